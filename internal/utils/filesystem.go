package utils

import (
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/ctenv/internal/configs"
	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
)

// FindSharedOutputRoot walks up from outDir, outDir included, to the first
// directory named marker and returns its path.
// Returns ErrSharedOutputRootNotFound once the filesystem root is reached
// without a match.
func FindSharedOutputRoot(outDir, marker string) (string, error) {
	currentDir := filepath.Clean(outDir)

	for {
		if filepath.Base(currentDir) == marker {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)

		// If we've reached the filesystem root and haven't found the marker
		if parentDir == currentDir {
			return "", fmt.Errorf("no %q directory above %s: %w", marker, outDir, kerrors.ErrSharedOutputRootNotFound)
		}
		currentDir = parentDir
	}
}

// LocateConfigFile derives the shared configuration file path from a package
// output directory. The file is a sibling of the shared output root.
// Existence of the file is not checked.
func LocateConfigFile(outDir string, layout configs.Layout) (string, error) {
	sharedRoot, err := FindSharedOutputRoot(outDir, layout.SharedOutputDir)
	if err != nil {
		return "", err
	}

	projectRoot := filepath.Dir(sharedRoot)
	return filepath.Join(projectRoot, layout.ConfigFileName), nil
}
