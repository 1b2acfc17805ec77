// Package buildenv reads the values a build tool injects into a package's
// build step: the package name and its private output directory.
//
// The variable names default to cargo's (CARGO_PKG_NAME, OUT_DIR) and can be
// changed through configs.EnvVars. Command-line overrides take precedence over
// the environment.
package buildenv
