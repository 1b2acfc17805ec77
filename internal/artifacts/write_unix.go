//go:build !windows

package artifacts

import (
	"github.com/google/renameio/v2"
)

// writeFile replaces path atomically so a concurrent reader sees either the
// previous artifact or the new one, never a truncated file.
func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, FileMode)
}
