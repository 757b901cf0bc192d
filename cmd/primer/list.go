package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer/pkg/core"
	"github.com/mlotufo/primer/pkg/lessons"
)

var (
	listJSON    bool
	filterTopic string
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List available lessons",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		matched, err := lessons.Default().Match(pattern)
		if err != nil {
			fatal("Failed to list lessons", err)
		}

		var filtered []core.Lesson
		for _, l := range matched {
			if filterTopic != "" && l.Topic != filterTopic {
				continue
			}
			filtered = append(filtered, l)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, l := range filtered {
			fmt.Printf("%-20s %s\n", l.ID, l.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTopic, "topic", "", "Filter lessons by topic")
}
