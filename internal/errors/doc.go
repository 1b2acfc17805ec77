// Package errors provides typed error values for ctenv.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Environment errors: a build variable is missing (ErrMissingEnv)
//   - Lookup errors: the shared output root cannot be found
//     (ErrSharedOutputRootNotFound)
//   - I/O errors: reading the shared file or writing an artifact failed
//     (ErrConfigUnreadable, ErrArtifactWrite, ErrArtifactNotFound)
//   - Parse errors: a line or key is malformed (ErrMalformedLine, ErrInvalidKey)
//   - Settings errors: the settings file is unusable (ErrInvalidSettings)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("opening %s: %w: %w", path, errors.ErrConfigUnreadable, err)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrSharedOutputRootNotFound) {
//	    // Explain the expected target/ layout
//	}
package errors
