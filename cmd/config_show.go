package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the settings in effect",
	Long: `Displays the settings ctenv is using, after applying the settings file
on top of the defaults.

Examples:
  ctenv config show
  ctenv config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		if configShowJSON {
			output, err := json.MarshalIndent(Settings, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal settings to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(Settings); err != nil {
			return Logger.ErrorfAndReturn("failed to encode settings: %w", err)
		}
		return nil
	},
}
