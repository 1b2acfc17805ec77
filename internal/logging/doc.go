// Package logger provides leveled logging for ctenv commands.
//
// All log output goes to stderr. A build tool parses the stdout of a build
// step for directives, so nothing but directives may be printed there.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages, and logs returned errors
//
// Warnings are always shown.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Wrote %d artifacts", count)
//
// Commands create a logger in the root command's PersistentPreRunE.
package logger
