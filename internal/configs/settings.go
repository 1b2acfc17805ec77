package configs

import (
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
)

// SettingsPathEnv names the environment variable that points at a settings file
// when --settings is not given.
const SettingsPathEnv = "CTENV_SETTINGS"

// Settings holds the build tool conventions ctenv relies on.
type Settings struct {
	Layout    Layout    `toml:"layout" json:"layout"`
	Env       EnvVars   `toml:"env" json:"env"`
	Directive Directive `toml:"directive" json:"directive"`
}

// Layout describes where the shared configuration file lives relative to the
// build tool's output tree.
type Layout struct {
	// SharedOutputDir is the directory name searched for while walking up from
	// the package output directory.
	SharedOutputDir string `toml:"shared_output_dir" json:"shared_output_dir"`

	// ConfigFileName is the shared configuration file, a sibling of SharedOutputDir.
	ConfigFileName string `toml:"config_file_name" json:"config_file_name"`
}

// EnvVars names the variables the build tool sets for a package build step.
type EnvVars struct {
	PackageName string `toml:"package_name" json:"package_name"`
	OutDir      string `toml:"out_dir" json:"out_dir"`
}

// Directive configures the line emitted on stdout after a successful run.
type Directive struct {
	// RerunPrefix is prepended to the shared configuration file path.
	RerunPrefix string `toml:"rerun_prefix" json:"rerun_prefix"`
}

// DefaultSettings returns the conventions of a stock cargo build.
func DefaultSettings() *Settings {
	return &Settings{
		Layout: Layout{
			SharedOutputDir: "target",
			ConfigFileName:  ".env",
		},
		Env: EnvVars{
			PackageName: "CARGO_PKG_NAME",
			OutDir:      "OUT_DIR",
		},
		Directive: Directive{
			RerunPrefix: "cargo:rerun-if-changed=",
		},
	}
}

// LoadSettings loads settings from path. An empty path or a missing file yields
// the defaults. Fields left empty in the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	loaded := &Settings{}
	if err := LoadTOML(path, loaded); err != nil {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	settings.merge(loaded)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// SaveSettings writes settings to path as TOML.
func SaveSettings(path string, settings *Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Validate rejects values that would make path derivation ambiguous.
func (s *Settings) Validate() error {
	for field, value := range map[string]string{
		"layout.shared_output_dir": s.Layout.SharedOutputDir,
		"layout.config_file_name":  s.Layout.ConfigFileName,
	} {
		if value == "" || value == "." || value == ".." || strings.ContainsAny(value, `/\`) {
			return fmt.Errorf("%s must be a single path element, got %q: %w", field, value, kerrors.ErrInvalidSettings)
		}
	}
	if s.Env.PackageName == "" || s.Env.OutDir == "" {
		return fmt.Errorf("env variable names must not be empty: %w", kerrors.ErrInvalidSettings)
	}
	return nil
}

// merge copies every non-empty field of other into s.
func (s *Settings) merge(other *Settings) {
	if other.Layout.SharedOutputDir != "" {
		s.Layout.SharedOutputDir = other.Layout.SharedOutputDir
	}
	if other.Layout.ConfigFileName != "" {
		s.Layout.ConfigFileName = other.Layout.ConfigFileName
	}
	if other.Env.PackageName != "" {
		s.Env.PackageName = other.Env.PackageName
	}
	if other.Env.OutDir != "" {
		s.Env.OutDir = other.Env.OutDir
	}
	if other.Directive.RerunPrefix != "" {
		s.Directive.RerunPrefix = other.Directive.RerunPrefix
	}
}
