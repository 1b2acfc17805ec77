package workflows

import (
	"bytes"
	"context"
	"errors"

	"github.com/PolarWolf314/ctenv/internal/artifacts"
	"github.com/PolarWolf314/ctenv/internal/configs"
	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
)

// ArtifactStatus compares an artifact on disk with the configured value.
type ArtifactStatus string

const (
	// StatusCurrent means the artifact holds the configured value.
	StatusCurrent ArtifactStatus = "current"
	// StatusStale means the artifact holds a different value.
	StatusStale ArtifactStatus = "stale"
	// StatusMissing means no artifact exists for the key yet.
	StatusMissing ArtifactStatus = "missing"
)

// ArtifactStatusInfo holds the status of one key.
type ArtifactStatusInfo struct {
	// Key is the configuration key.
	Key string

	// Line is the line of the entry that a run would write last.
	Line int

	// Status is the comparison outcome.
	Status ArtifactStatus
}

// StatusOptions configures the status workflow.
type StatusOptions struct {
	// OutDir is the package output directory holding the artifacts.
	OutDir string

	// PackageName selects which entries to compare.
	PackageName string

	// Settings holds the build tool conventions. Nil means defaults.
	Settings *configs.Settings
}

// StatusResult contains the outcome of a status check.
type StatusResult struct {
	// ConfigPath is the shared configuration file that was read.
	ConfigPath string

	// Keys holds one status per distinct key, in order of first appearance.
	Keys []ArtifactStatusInfo
}

// Status reports whether each of the package's artifacts matches the shared
// configuration file. When a key is configured more than once the last entry
// wins, as it would in a run. Nothing is written.
//
// Artifacts left behind by keys that were removed from the shared file are
// not reported: the output directory also holds unrelated build outputs.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
	listed, err := List(ctx, ListOptions{
		OutDir:      opts.OutDir,
		PackageName: opts.PackageName,
		Settings:    opts.Settings,
	})
	if err != nil {
		return nil, err
	}

	result := &StatusResult{ConfigPath: listed.ConfigPath}
	index := make(map[string]int)

	for _, entry := range listed.Entries {
		info := ArtifactStatusInfo{Key: entry.Key, Line: entry.Line}

		data, err := artifacts.Read(opts.OutDir, entry.Key)
		switch {
		case errors.Is(err, kerrors.ErrArtifactNotFound):
			info.Status = StatusMissing
		case err != nil:
			return nil, err
		case bytes.Equal(data, []byte(entry.Value)):
			info.Status = StatusCurrent
		default:
			info.Status = StatusStale
		}

		if i, seen := index[entry.Key]; seen {
			result.Keys[i] = info
			continue
		}
		index[entry.Key] = len(result.Keys)
		result.Keys = append(result.Keys, info)
	}

	return result, nil
}
