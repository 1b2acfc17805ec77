package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/ctenv/internal/configs"
	"github.com/PolarWolf314/ctenv/internal/envfile"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// OutDir is the package output directory used to locate the shared file.
	OutDir string

	// PackageName filters entries by owner. Ignored when All is set.
	PackageName string

	// All lists the entries of every package.
	All bool

	// Settings holds the build tool conventions. Nil means defaults.
	Settings *configs.Settings
}

// ListResult contains the entries a run would act on.
type ListResult struct {
	// ConfigPath is the shared configuration file that was read.
	ConfigPath string

	// Entries are the matching entries in file order.
	Entries []envfile.Entry

	// TotalEntries counts every entry in the file, regardless of owner.
	TotalEntries int
}

// List parses the shared configuration file without writing anything.
// Unlike Run it rejects the whole file if any line is malformed.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	located, err := Locate(ctx, LocateOptions{OutDir: opts.OutDir, Settings: opts.Settings})
	if err != nil {
		return nil, err
	}

	entries, err := envfile.ReadFile(located.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", located.ConfigPath, err)
	}

	result := &ListResult{
		ConfigPath:   located.ConfigPath,
		Entries:      entries,
		TotalEntries: len(entries),
	}
	if !opts.All {
		result.Entries = envfile.ForOwner(entries, opts.PackageName)
	}

	return result, nil
}
