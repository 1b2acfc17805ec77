// Package artifacts reads and writes per-key artifact files.
//
// An artifact is a plain file named after a configuration key inside a
// package's private output directory. Its contents are exactly the configured
// value, with no header, footer or trailing newline, so that it can be spliced
// into source code as-is by the consumer.
//
// Artifacts are never removed. An artifact whose key has been dropped from the
// shared configuration file stays in the output directory until the build
// tool recycles that directory.
package artifacts
