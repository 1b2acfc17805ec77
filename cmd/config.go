package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the parent of the settings commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ctenv settings",
	Long: `Provides commands for managing ctenv's own settings: the build tool
conventions used to find the shared .env file and to talk to the build step.

The settings file is read from --settings or $CTENV_SETTINGS. Without one,
the defaults for cargo are used.

Examples:
  # Write the default settings to ctenv.toml
  ctenv config init

  # Show the settings in effect
  ctenv config show --settings ctenv.toml`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigState resets all config command global variables for testing.
func resetConfigState() {
	resetConfigInitState()
	resetConfigShowState()
}
