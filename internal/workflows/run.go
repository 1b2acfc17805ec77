package workflows

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/ctenv/internal/artifacts"
	"github.com/PolarWolf314/ctenv/internal/buildenv"
	"github.com/PolarWolf314/ctenv/internal/configs"
	"github.com/PolarWolf314/ctenv/internal/envfile"
	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
	"github.com/PolarWolf314/ctenv/internal/utils"
)

// RunOptions configures the run workflow.
type RunOptions struct {
	// Env identifies the package being built and its output directory.
	Env buildenv.Env

	// Settings holds the build tool conventions. Nil means defaults.
	Settings *configs.Settings

	// Directives receives the rebuild directive after a successful run.
	// Nil discards it.
	Directives io.Writer
}

// Artifact describes one artifact file written by a run.
type Artifact struct {
	// Key is the configuration key and the artifact's file name.
	Key string

	// Path is the absolute path of the artifact file.
	Path string

	// Line is the line of the shared configuration file the value came from.
	Line int

	// Size is the number of bytes written.
	Size int
}

// RunResult contains the outcome of a run.
type RunResult struct {
	// ConfigPath is the shared configuration file that was read.
	ConfigPath string

	// Artifacts lists the artifacts written, in file order.
	Artifacts []Artifact

	// SkippedEntries counts entries owned by other packages.
	SkippedEntries int
}

// Run materializes the current package's entries of the shared configuration
// file into its output directory.
//
// Lines are processed in file order. The first malformed line, invalid key or
// failed write aborts the run. Artifacts written for earlier lines stay on
// disk, and the returned result lists them alongside the error. The rebuild
// directive is emitted only after every line was processed.
//
// Returns ErrSharedOutputRootNotFound before any file is read if the output
// directory is not inside the shared output root.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings := opts.Settings
	if settings == nil {
		settings = configs.DefaultSettings()
	}

	configPath, err := utils.LocateConfigFile(opts.Env.OutDir, settings.Layout)
	if err != nil {
		return nil, fmt.Errorf("locating shared configuration file: %w", err)
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %w", configPath, kerrors.ErrConfigUnreadable, err)
	}
	defer file.Close()

	result := &RunResult{ConfigPath: configPath}

	err = envfile.Scan(file, func(entry envfile.Entry) error {
		if entry.Owner != opts.Env.PackageName {
			result.SkippedEntries++
			return nil
		}

		path, err := artifacts.Write(opts.Env.OutDir, entry.Key, []byte(entry.Value))
		if err != nil {
			return fmt.Errorf("line %d: %w", entry.Line, err)
		}

		result.Artifacts = append(result.Artifacts, Artifact{
			Key:  entry.Key,
			Path: path,
			Line: entry.Line,
			Size: len(entry.Value),
		})
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("processing %s: %w", configPath, err)
	}

	if err := emitRerunDirective(opts.Directives, settings.Directive, configPath); err != nil {
		return result, err
	}

	return result, nil
}

// emitRerunDirective registers the shared file as a rebuild trigger.
func emitRerunDirective(w io.Writer, directive configs.Directive, configPath string) error {
	if w == nil || directive.RerunPrefix == "" {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", directive.RerunPrefix, configPath); err != nil {
		return fmt.Errorf("writing rebuild directive: %w", err)
	}
	return nil
}

// ArtifactPaths returns the paths of the written artifacts.
func (r *RunResult) ArtifactPaths() []string {
	paths := make([]string, 0, len(r.Artifacts))
	for _, a := range r.Artifacts {
		paths = append(paths, a.Path)
	}
	return paths
}
