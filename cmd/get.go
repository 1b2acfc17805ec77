package cmd

import (
	"github.com/PolarWolf314/ctenv/internal/workflows"

	"github.com/spf13/cobra"
)

var getOutDir string

func init() {
	getCmd.Flags().StringVarP(&getOutDir, "out-dir", "o", "", "package output directory (default from the build environment)")
}

func resetGetCommandState() {
	getOutDir = ""
}

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the materialized value of a key",
	Long: `Prints the contents of <out-dir>/KEY exactly as written by 'ctenv run',
without a trailing newline.

This reads the artifact only; it never consults the .env file.

Examples:
  BUF_SZ=$(ctenv get BUF_SZ)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting get command")

		outDir, err := resolveOutDir(getOutDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read build environment: %w", err)
		}

		value, err := workflows.Get(cmd.Context(), workflows.GetOptions{OutDir: outDir, Key: args[0]})
		if err != nil {
			return Logger.ErrorfAndReturn("ctenv get failed: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(value)
		return err
	},
}
