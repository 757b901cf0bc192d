package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer/pkg/workspace"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a primer workspace",
	Long:  `Write a default .primer.yml into the given directory (or the current one).`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			cwd, err := resolveWorkdir()
			if err != nil {
				fatal("Failed to resolve workspace directory", err)
			}
			dir = cwd
		}

		cfgPath := filepath.Join(dir, workspace.ConfigFileName)
		if _, err := os.Stat(cfgPath); err == nil && !initForce {
			fatal("Workspace already initialized", fmt.Errorf("%s exists (use --force to overwrite)", cfgPath))
		}

		if err := workspace.SaveConfig(dir, workspace.DefaultConfig()); err != nil {
			fatal("Failed to write workspace config", err)
		}

		fmt.Println("Initialized primer workspace in", dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration")
}
