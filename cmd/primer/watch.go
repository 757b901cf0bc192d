package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer"
	"github.com/mlotufo/primer/pkg/workspace"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Run lessons and re-run them when the workspace changes",
	Long: `Run the matching lessons once, then watch the workspace directory
and re-run them whenever a file changes. Scratch files written by the
lessons themselves are ignored. Stop with Ctrl-C.`,
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

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, env, err := primer.New(wd, primer.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize primer", err)
		}

		ws, err := workspace.New(wd, slog.Default())
		if err != nil {
			fatal("Failed to open workspace", err)
		}

		events, err := ws.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		runOnce := func() {
			if _, err := svc.Run(ctx, pattern, env); err != nil {
				fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
			}
		}

		runOnce()
		fmt.Println("\nWatching for changes (Ctrl-C to stop)...")

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-events:
				if !ok {
					return
				}
				slog.Info("change detected", "event", e.String())
				runOnce()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
