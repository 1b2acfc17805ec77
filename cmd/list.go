package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/ctenv/internal/envfile"
	"github.com/PolarWolf314/ctenv/internal/ui"
	"github.com/PolarWolf314/ctenv/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	listPackage    string
	listOutDir     string
	listAll        bool
	listJSONOutput bool
)

func init() {
	listCmd.Flags().StringVarP(&listPackage, "package", "p", "", "package name (default from the build environment)")
	listCmd.Flags().StringVarP(&listOutDir, "out-dir", "o", "", "package output directory (default from the build environment)")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "list the entries of every package")
	listCmd.Flags().BoolVar(&listJSONOutput, "json", false, "output in JSON format")
}

func resetListCommandState() {
	listPackage = ""
	listOutDir = ""
	listAll = false
	listJSONOutput = false
}

// listEntryJSON is the JSON form of one entry.
type listEntryJSON struct {
	Line    int    `json:"line"`
	Package string `json:"package"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the entries a run would write, without writing them",
	Long: `Parses the shared .env file and lists the entries owned by the current
package, or by every package with --all. Nothing is written.

Unlike 'ctenv run', the whole file is validated before anything is printed.

Examples:
  ctenv list --package foo --out-dir target/debug/build/foo-1234/out
  ctenv list --all --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		Logger.Debugf("Flags: all=%t, json=%t", listAll, listJSONOutput)

		opts := workflows.ListOptions{All: listAll, Settings: Settings}
		if listAll {
			outDir, err := resolveOutDir(listOutDir)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read build environment: %w", err)
			}
			opts.OutDir = outDir
		} else {
			env, err := resolveEnv(listPackage, listOutDir)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read build environment: %w", err)
			}
			opts.OutDir = env.OutDir
			opts.PackageName = env.PackageName
		}

		result, err := workflows.List(cmd.Context(), opts)
		if err != nil {
			return Logger.ErrorfAndReturn("ctenv list failed: %w", err)
		}
		Logger.Infof("Found %d of %d entries in %s", len(result.Entries), result.TotalEntries, result.ConfigPath)

		if listJSONOutput {
			return outputListJSON(cmd, result.Entries)
		}
		outputListText(cmd, opts, result)
		return nil
	},
}

func outputListJSON(cmd *cobra.Command, entries []envfile.Entry) error {
	out := make([]listEntryJSON, 0, len(entries))
	for _, entry := range entries {
		out = append(out, listEntryJSON{
			Line:    entry.Line,
			Package: entry.Owner,
			Key:     entry.Key,
			Value:   entry.Value,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputListText(cmd *cobra.Command, opts workflows.ListOptions, result *workflows.ListResult) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Shared configuration: %s\n", ui.Path.Sprint(result.ConfigPath))
	fmt.Fprintln(w)

	if len(result.Entries) == 0 {
		if opts.All {
			fmt.Fprintln(w, ui.Warning.Sprint("⚠")+" No entries found.")
		} else {
			fmt.Fprintln(w, ui.Warning.Sprint("⚠")+" No entries for "+ui.Highlight.Sprint(opts.PackageName)+".")
			fmt.Fprintln(w, ui.Info.Sprint("→")+" Add a line like "+ui.Code.Sprint(opts.PackageName+":KEY=value")+" to the file")
		}
		return
	}

	for _, entry := range result.Entries {
		if opts.All {
			fmt.Fprintf(w, "  %s:%s = %s %s\n", ui.Highlight.Sprint(entry.Owner), entry.Key,
				ui.Success.Sprint(entry.Value), ui.Muted.Sprintf("line %d", entry.Line))
			continue
		}
		fmt.Fprintf(w, "  %s = %s %s\n", entry.Key, ui.Success.Sprint(entry.Value), ui.Muted.Sprintf("line %d", entry.Line))
	}
}
