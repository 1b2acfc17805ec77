// Package workflows implements the operations behind each ctenv command.
//
// The cmd/ package stays a thin layer that parses flags, resolves the build
// environment, calls a workflow and formats its result. Workflows do the rest:
//
//   - Run: locate the shared configuration file, parse it line by line and
//     write the current package's artifacts, then emit the rebuild directive
//   - Locate: derive the shared configuration file path from an output directory
//   - List: parse the shared file and return entries without writing
//   - Status: compare existing artifacts with the configured values
//   - Get: read one artifact back
//   - Watch: re-run whenever the shared file changes
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels of internal/errors:
//
//	result, err := workflows.Run(ctx, opts)
//	if errors.Is(err, kerrors.ErrMalformedLine) {
//	    // Point the user at the offending line
//	}
//
// There is no rollback. When Run fails part way, the artifacts written for
// earlier lines remain and are listed in the returned result.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Run and Watch are the only ones that consult it.
package workflows
