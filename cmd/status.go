package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/ctenv/internal/ui"
	"github.com/PolarWolf314/ctenv/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	statusPackage    string
	statusOutDir     string
	statusJSONOutput bool
)

func init() {
	statusCmd.Flags().StringVarP(&statusPackage, "package", "p", "", "package name (default from the build environment)")
	statusCmd.Flags().StringVarP(&statusOutDir, "out-dir", "o", "", "package output directory (default from the build environment)")
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "output in JSON format")
}

func resetStatusCommandState() {
	statusPackage = ""
	statusOutDir = ""
	statusJSONOutput = false
}

// statusJSON is the JSON form of a status report.
type statusJSON struct {
	Config string          `json:"config"`
	Keys   []statusKeyJSON `json:"keys"`
	Counts map[string]int  `json:"summary"`
}

type statusKeyJSON struct {
	Key    string `json:"key"`
	Line   int    `json:"line"`
	Status string `json:"status"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compare existing artifacts with the shared .env file",
	Long: `Reports, for every key the current package owns, whether its artifact is
up to date, holds a different value, or has not been written yet.

Artifacts of keys that were removed from .env are left in the output
directory by 'ctenv run' and are not reported here.

Examples:
  ctenv status --package foo --out-dir target/debug/build/foo-1234/out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")

		env, err := resolveEnv(statusPackage, statusOutDir)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read build environment: %w", err)
		}

		result, err := workflows.Status(cmd.Context(), workflows.StatusOptions{
			OutDir:      env.OutDir,
			PackageName: env.PackageName,
			Settings:    Settings,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("ctenv status failed: %w", err)
		}

		if statusJSONOutput {
			return outputStatusJSON(cmd, result)
		}
		outputStatusText(cmd, env.PackageName, result)
		return nil
	},
}

func outputStatusJSON(cmd *cobra.Command, result *workflows.StatusResult) error {
	out := statusJSON{
		Config: result.ConfigPath,
		Keys:   make([]statusKeyJSON, 0, len(result.Keys)),
		Counts: map[string]int{
			string(workflows.StatusCurrent): 0,
			string(workflows.StatusStale):   0,
			string(workflows.StatusMissing): 0,
		},
	}
	for _, info := range result.Keys {
		out.Keys = append(out.Keys, statusKeyJSON{Key: info.Key, Line: info.Line, Status: string(info.Status)})
		out.Counts[string(info.Status)]++
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("failed to marshal status to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputStatusText(cmd *cobra.Command, packageName string, result *workflows.StatusResult) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Package: %s\n", ui.Highlight.Sprint(packageName))
	fmt.Fprintf(w, "Shared configuration: %s\n", ui.Path.Sprint(result.ConfigPath))
	fmt.Fprintln(w)

	if len(result.Keys) == 0 {
		fmt.Fprintln(w, ui.Success.Sprint("✓")+" No entries for this package.")
		return
	}

	needsRun := false
	for _, info := range result.Keys {
		var statusStr string
		switch info.Status {
		case workflows.StatusCurrent:
			statusStr = ui.Success.Sprint("✓") + " up to date"
		case workflows.StatusStale:
			statusStr = ui.Warning.Sprint("⚠") + " stale (value changed in .env)"
			needsRun = true
		case workflows.StatusMissing:
			statusStr = ui.Error.Sprint("✗") + " not written"
			needsRun = true
		}
		fmt.Fprintf(w, "  %-24s %s %s\n", info.Key, statusStr, ui.Muted.Sprintf("line %d", info.Line))
	}

	if needsRun {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("ctenv run")+" or rebuild to update the artifacts")
	}
}
