package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of primer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", primer.Name, primer.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
