package cmd

import (
	"errors"

	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
	"github.com/PolarWolf314/ctenv/internal/utils"
	"github.com/PolarWolf314/ctenv/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	runPackage string
	runOutDir  string
)

func init() {
	runCmd.Flags().StringVarP(&runPackage, "package", "p", "", "package name (default from the build environment)")
	runCmd.Flags().StringVarP(&runOutDir, "out-dir", "o", "", "package output directory (default from the build environment)")
}

func resetRunCommandState() {
	runPackage = ""
	runOutDir = ""
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Write this package's configuration values into its output directory",
	Long: `Materializes the current package's entries of the shared .env file.

Every line <package>:<key>=<value> whose <package> equals the package being
built is written to <out-dir>/<key>, containing exactly <value>. Lines starting
with '#' are comments. The first malformed line aborts the run; artifacts
written for earlier lines are kept.

On success a rebuild directive naming the .env file is printed on stdout.
Nothing else is ever printed on stdout.

Examples:
  # From a build step, with CARGO_PKG_NAME and OUT_DIR set
  ctenv run

  # Outside a build step
  ctenv run --package foo --out-dir target/debug/build/foo-1234/out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting run command")

		env, err := resolveEnv(runPackage, runOutDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read build environment: %w", err)
		}

		result, err := workflows.Run(cmd.Context(), workflows.RunOptions{
			Env:        env,
			Settings:   Settings,
			Directives: cmd.OutOrStdout(),
		})
		if err != nil {
			if result != nil && len(result.Artifacts) > 0 {
				Logger.Warnf("%d artifact(s) from earlier lines were written before the failure:%s",
					len(result.Artifacts), utils.FormatPaths(result.ArtifactPaths()))
			}
			if errors.Is(err, kerrors.ErrSharedOutputRootNotFound) {
				Logger.Warnf("ctenv expects the output directory to be inside %s/; is the build output location overridden?",
					Settings.Layout.SharedOutputDir)
			}
			return Logger.ErrorfAndReturn("ctenv run failed for %s: %w", env.PackageName, err)
		}

		Logger.Infof("Read %s", result.ConfigPath)
		Logger.Infof("Wrote %d artifact(s) for %s, skipped %d entries of other packages",
			len(result.Artifacts), env.PackageName, result.SkippedEntries)
		if len(result.Artifacts) > 0 {
			Logger.Debugf("Artifacts:%s", utils.FormatPaths(result.ArtifactPaths()))
		}
		return nil
	},
}
