package workflows

import (
	"context"

	"github.com/PolarWolf314/ctenv/internal/artifacts"
)

// GetOptions configures the get workflow.
type GetOptions struct {
	// OutDir is the package output directory holding the artifacts.
	OutDir string

	// Key names the artifact to read.
	Key string
}

// Get returns the raw contents of a materialized artifact. It only reads the
// output directory and never consults the shared configuration file.
func Get(ctx context.Context, opts GetOptions) ([]byte, error) {
	return artifacts.Read(opts.OutDir, opts.Key)
}
