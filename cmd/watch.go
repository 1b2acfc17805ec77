package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PolarWolf314/ctenv/internal/ui"
	"github.com/PolarWolf314/ctenv/internal/utils"
	"github.com/PolarWolf314/ctenv/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	watchPackage  string
	watchOutDir   string
	watchDebounce time.Duration
)

func init() {
	watchCmd.Flags().StringVarP(&watchPackage, "package", "p", "", "package name (default from the build environment)")
	watchCmd.Flags().StringVarP(&watchOutDir, "out-dir", "o", "", "package output directory (default from the build environment)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", workflows.DefaultWatchDebounce, "quiet period after a change before re-running")
}

func resetWatchCommandState() {
	watchPackage = ""
	watchOutDir = ""
	watchDebounce = workflows.DefaultWatchDebounce
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run whenever the shared .env file changes",
	Long: `Runs 'ctenv run' once, then again every time the shared .env file is
written, replaced or removed, until interrupted with Ctrl-C.

Useful while tuning values: artifacts stay current without a full rebuild.
No rebuild directive is printed.

Examples:
  ctenv watch --package foo --out-dir target/debug/build/foo-1234/out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting watch command")

		env, err := resolveEnv(watchPackage, watchOutDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read build environment: %w", err)
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = workflows.Watch(ctx, workflows.WatchOptions{
			Run: workflows.RunOptions{
				Env:      env,
				Settings: Settings,
			},
			Debounce: watchDebounce,
			OnRun: func(result *workflows.RunResult, err error) {
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", ui.Error.Sprint("✗"), err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %d artifact(s) from %s\n", ui.Success.Sprint("✓"),
					len(result.Artifacts), ui.Path.Sprint(result.ConfigPath))
				Logger.Debugf("Artifacts:%s", utils.FormatPaths(result.ArtifactPaths()))
			},
			OnError: func(err error) {
				Logger.Warnf("watcher error: %v", err)
			},
		})
		if err != nil {
			return Logger.ErrorfAndReturn("ctenv watch failed: %w", err)
		}

		Logger.Infof("Stopped watching")
		return nil
	},
}
