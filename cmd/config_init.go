package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/ctenv/internal/configs"
	"github.com/PolarWolf314/ctenv/internal/ui"

	"github.com/spf13/cobra"
)

// defaultSettingsFile is written by config init when no path is configured.
const defaultSettingsFile = "ctenv.toml"

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing settings file")
}

func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	Long: `Writes the settings currently in effect to a TOML file, so they can be
edited. The file is written to --settings, $CTENV_SETTINGS, or ctenv.toml in
the current directory.

Examples:
  ctenv config init
  ctenv config init --settings build/ctenv.toml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		path := settingsPath
		if path == "" {
			path = os.Getenv(configs.SettingsPathEnv)
		}
		if path == "" {
			path = defaultSettingsFile
		}
		Logger.Debugf("Settings path: %s", path)

		if _, err := os.Stat(path); err == nil && !configInitForce {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Error.Sprint("✗")+" "+ui.Path.Sprint(path)+" already exists")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info.Sprint("→")+" Use "+ui.Flag.Sprint("--force")+" to overwrite it")
			return nil
		}

		if err := configs.SaveSettings(path, Settings); err != nil {
			return Logger.ErrorfAndReturn("failed to write settings: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint("✓")+" Wrote settings to "+ui.Path.Sprint(path))
		if settingsPath == "" && os.Getenv(configs.SettingsPathEnv) == "" {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info.Sprint("→")+" Set "+ui.Code.Sprint(configs.SettingsPathEnv+"="+path)+" in the build environment to use it")
		}
		return nil
	},
}
