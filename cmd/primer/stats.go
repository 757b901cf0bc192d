package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer/pkg/core"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [n...]",
	Short: "Summarize a sequence of integers",
	Long:  `Compute sum, arithmetic mean, maximum and minimum over the given integers. With no arguments the result is the empty-input sentinel.`,
	Run: func(cmd *cobra.Command, args []string) {
		items := make([]int, 0, len(args))
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				fatal(fmt.Sprintf("Invalid integer %q", arg), err)
			}
			items = append(items, n)
		}

		result := core.Summarize(items)

		if statsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Printf("Sum: %d\n", result.Sum)
		fmt.Printf("Average: %g\n", result.Average)
		fmt.Printf("Max: %s\n", formatExtreme(result.Max))
		fmt.Printf("Min: %s\n", formatExtreme(result.Min))
	},
}

func formatExtreme(v *int) string {
	if v == nil {
		return "(none)"
	}
	return strconv.Itoa(*v)
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
}
