package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
	"github.com/PolarWolf314/ctenv/internal/utils"
)

// FileMode is the permission set on every artifact file.
const FileMode os.FileMode = 0644

// Path returns the artifact file for key inside outDir.
func Path(outDir, key string) (string, error) {
	if !utils.IsSinglePathElement(key) {
		return "", fmt.Errorf("key %q is not a valid file name: %w", key, kerrors.ErrInvalidKey)
	}
	return filepath.Join(outDir, key), nil
}

// Write stores value as the artifact for key, replacing any previous artifact
// of the same name. The file holds exactly the value bytes.
func Write(outDir, key string, value []byte) (string, error) {
	path, err := Path(outDir, key)
	if err != nil {
		return "", err
	}

	if err := writeFile(path, value); err != nil {
		return "", fmt.Errorf("writing %s: %w: %w", path, kerrors.ErrArtifactWrite, err)
	}
	return path, nil
}

// Read returns the contents of the artifact for key.
func Read(outDir, key string) ([]byte, error) {
	path, err := Path(outDir, key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, kerrors.ErrArtifactNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
