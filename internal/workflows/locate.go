package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/ctenv/internal/configs"
	"github.com/PolarWolf314/ctenv/internal/utils"
)

// LocateOptions configures the locate workflow.
type LocateOptions struct {
	// OutDir is the package output directory to start from.
	OutDir string

	// Settings holds the build tool conventions. Nil means defaults.
	Settings *configs.Settings
}

// LocateResult contains the derived paths.
type LocateResult struct {
	// SharedOutputRoot is the ancestor of OutDir named after the shared output directory.
	SharedOutputRoot string

	// ProjectRoot is the parent of SharedOutputRoot.
	ProjectRoot string

	// ConfigPath is the shared configuration file inside ProjectRoot.
	ConfigPath string

	// Exists reports whether ConfigPath is an existing regular file.
	Exists bool
}

// Locate derives where the shared configuration file for OutDir lives.
func Locate(ctx context.Context, opts LocateOptions) (*LocateResult, error) {
	settings := opts.Settings
	if settings == nil {
		settings = configs.DefaultSettings()
	}

	sharedRoot, err := utils.FindSharedOutputRoot(opts.OutDir, settings.Layout.SharedOutputDir)
	if err != nil {
		return nil, fmt.Errorf("locating shared configuration file: %w", err)
	}

	projectRoot := filepath.Dir(sharedRoot)
	result := &LocateResult{
		SharedOutputRoot: sharedRoot,
		ProjectRoot:      projectRoot,
		ConfigPath:       filepath.Join(projectRoot, settings.Layout.ConfigFileName),
	}

	info, err := os.Stat(result.ConfigPath)
	switch {
	case err == nil:
		result.Exists = info.Mode().IsRegular()
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("checking %s: %w", result.ConfigPath, err)
	}

	return result, nil
}
