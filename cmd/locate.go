package cmd

import (
	"fmt"

	"github.com/PolarWolf314/ctenv/internal/ui"
	"github.com/PolarWolf314/ctenv/internal/workflows"

	"github.com/spf13/cobra"
)

var locateOutDir string

func init() {
	locateCmd.Flags().StringVarP(&locateOutDir, "out-dir", "o", "", "package output directory (default from the build environment)")
}

func resetLocateCommandState() {
	locateOutDir = ""
}

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the path of the shared .env file",
	Long: `Prints where ctenv looks for the shared configuration file.

The path is derived from the package output directory: ctenv walks up until
it finds the target/ directory and takes the .env file next to it. The path
is printed on stdout; a warning is logged if the file does not exist.

Examples:
  ctenv locate --out-dir target/release/build/foo-1234/out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting locate command")

		outDir, err := resolveOutDir(locateOutDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read build environment: %w", err)
		}

		result, err := workflows.Locate(cmd.Context(), workflows.LocateOptions{
			OutDir:   outDir,
			Settings: Settings,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("ctenv locate failed: %w", err)
		}

		Logger.Infof("Shared output root: %s", ui.Path.Sprint(result.SharedOutputRoot))
		if !result.Exists {
			Logger.Warnf("%s does not exist yet", ui.Path.Sprint(result.ConfigPath))
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.ConfigPath)
		return nil
	},
}
