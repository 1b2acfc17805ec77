package cmd

import (
	"os"

	"github.com/PolarWolf314/ctenv/internal/configs"
	logger "github.com/PolarWolf314/ctenv/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose      bool
	debug        bool
	settingsPath string

	Logger   logger.Logger
	Settings = configs.DefaultSettings()

	RootCmd = &cobra.Command{
		Use:   "ctenv",
		Short: "ctenv - compile time configuration for dependencies",
		Long: `ctenv lets a dependency read compile time configuration from a single .env
file owned by the top-level project.

Call it from the dependency's build step:

  ctenv run

It finds <project>/.env by walking up from the package's output directory to
target/, writes every <package>:<key>=<value> entry meant for this package to
$OUT_DIR/<key>, and prints a directive so the build is redone when .env changes.

Example .env:
  # one <package>:<key>=<value> entry per line
  foo:BUF_SZ=128`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing ctenv with verbose=%t, debug=%t", verbose, debug)

			path := settingsPath
			if path == "" {
				path = os.Getenv(configs.SettingsPathEnv)
			}
			Logger.Debugf("Loading settings from %q", path)

			loaded, err := configs.LoadSettings(path)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load settings: %w", err)
			}
			Settings = loaded
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to a ctenv settings file (default $"+configs.SettingsPathEnv+")")

	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(locateCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(watchCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	settingsPath = ""
	Settings = configs.DefaultSettings()
	resetRunCommandState()
	resetLocateCommandState()
	resetListCommandState()
	resetStatusCommandState()
	resetGetCommandState()
	resetWatchCommandState()
	resetConfigState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker of every flag to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
