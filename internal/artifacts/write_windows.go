//go:build windows

package artifacts

import "os"

// writeFile falls back to a plain write; renameio does not support windows.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, FileMode)
}
