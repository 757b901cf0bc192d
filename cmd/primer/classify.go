package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer/pkg/core"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <n>",
	Short: "Describe an integer by sign and parity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fatal(fmt.Sprintf("Invalid integer %q", args[0]), err)
		}
		fmt.Println(core.Classify(n))
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
