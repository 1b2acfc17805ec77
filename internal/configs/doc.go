// Package configs manages ctenv's own settings.
//
// ctenv needs to know a few conventions of the build tool that invokes it:
//
//   - the name of the shared output directory (target)
//   - the name of the shared configuration file next to it (.env)
//   - the environment variables carrying the package name and output
//     directory (CARGO_PKG_NAME, OUT_DIR)
//   - the directive that registers the shared file as a rebuild trigger
//     (cargo:rerun-if-changed=)
//
// The defaults match a stock cargo build. They can be overridden with a TOML
// file passed via --settings or the CTENV_SETTINGS environment variable:
//
//	[layout]
//	shared_output_dir = "build"
//	config_file_name = "ctenv.conf"
//
//	[env]
//	package_name = "PKG"
//	out_dir = "PKG_OUT"
//
// Fields left out of the file keep their defaults. This file configures ctenv
// itself; it is unrelated to the shared configuration file that ctenv parses.
package configs
