package errors

import "errors"

// Environment errors indicate the build step did not provide required values.
var (
	// ErrMissingEnv indicates a required build environment variable is unset or empty.
	ErrMissingEnv = errors.New("required build environment variable is not set")
)

// Lookup errors indicate the shared configuration file could not be located.
var (
	// ErrSharedOutputRootNotFound indicates no ancestor of the output directory
	// carries the shared output directory name.
	ErrSharedOutputRootNotFound = errors.New("shared output root not found in output directory ancestry")
)

// I/O errors indicate a file could not be read or written.
var (
	// ErrConfigUnreadable indicates the shared configuration file could not be opened or read.
	ErrConfigUnreadable = errors.New("shared configuration file could not be read")

	// ErrArtifactWrite indicates an artifact file could not be written.
	ErrArtifactWrite = errors.New("failed to write artifact")

	// ErrArtifactNotFound indicates the requested artifact does not exist.
	ErrArtifactNotFound = errors.New("artifact not found")
)

// Parse errors indicate the shared configuration file is malformed.
var (
	// ErrMalformedLine indicates a non-comment line lacks the owner or key delimiter.
	ErrMalformedLine = errors.New("malformed configuration line")

	// ErrInvalidKey indicates a key cannot be used as an artifact file name.
	ErrInvalidKey = errors.New("invalid configuration key")
)

// Settings errors indicate the ctenv settings file is unusable.
var (
	// ErrInvalidSettings indicates the settings file holds unusable values.
	ErrInvalidSettings = errors.New("settings are invalid")
)
