// Package utils provides shared helper functions for ctenv.
//
// # Filesystem Utilities
//
// Functions for deriving paths from the build tool's output layout:
//   - FindSharedOutputRoot: walks up from a package output directory to the
//     shared output root (target)
//   - LocateConfigFile: returns the shared configuration file next to it
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - IsSinglePathElement: checks that a key is safe to use as a file name
package utils
