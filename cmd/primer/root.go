package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	workdir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "primer",
	Short: "A runnable primer of language fundamentals",
	Long: `primer teaches language fundamentals through runnable lessons:
structs, numbers, loops, collections, error handling and file I/O.
Each lesson is independent and prints its demonstration to stdout.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveWorkdir returns the --workdir flag or the current directory.
func resolveWorkdir() (string, error) {
	if workdir != "" {
		return workdir, nil
	}
	return os.Getwd()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workdir, "workdir", "w", "", "Workspace directory (defaults to the current directory)")
}
