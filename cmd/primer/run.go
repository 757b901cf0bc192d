package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer"
	"github.com/mlotufo/primer/pkg/workspace"
)

var (
	runJSON bool
)

var runCmd = &cobra.Command{
	Use:   "run [pattern]",
	Short: "Run lessons",
	Long: `Run every lesson, or the subset whose IDs match a glob pattern
(e.g. 'flow/*' or 'files/roundtrip'). Without a pattern the workspace
configuration decides; its default is all lessons.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		wd, err := resolveWorkdir()
		if err != nil {
			fatal("Failed to resolve workspace directory", err)
		}

		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		} else {
			cfg, err := workspace.LoadConfig(wd)
			if err != nil {
				fatal("Failed to load workspace config", err)
			}
			pattern = cfg.Lessons
		}

		svc, env, err := primer.New(wd, primer.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize primer", err)
		}

		if !runJSON {
			fmt.Printf("=== %s v%s ===\n", primer.Name, primer.Version)
			fmt.Printf("Started at: %s\n", time.Now().Format(time.RFC1123))
		} else {
			// Keep stdout pure JSON; lesson output goes nowhere visible.
			env.Out = os.Stderr
		}

		report, err := svc.Run(context.Background(), pattern, env)
		if err != nil {
			fatal("Run failed", err)
		}

		if runJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				fatal("Failed to encode report", err)
			}
			return
		}

		fmt.Printf("\nCompleted %d lessons (run %s)\n", len(report.Results), report.RunID)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output the run report as JSON")
}
