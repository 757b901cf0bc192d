package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlotufo/primer/pkg/core"
)

var (
	greetName string
	greetAge  int
	greetJSON bool
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Greet a person and report the adulthood predicate",
	Run: func(cmd *cobra.Command, args []string) {
		p := core.NewPerson(greetName, greetAge)

		if greetJSON {
			out := struct {
				core.Person
				Greeting string `json:"greeting"`
				Adult    bool   `json:"adult"`
			}{Person: p, Greeting: p.Greet(), Adult: p.IsAdult()}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Println(p.Greet())
		fmt.Printf("Is adult? %t\n", p.IsAdult())
	},
}

func init() {
	rootCmd.AddCommand(greetCmd)
	greetCmd.Flags().StringVar(&greetName, "name", "Alice", "Person's name")
	greetCmd.Flags().IntVar(&greetAge, "age", 25, "Person's age")
	greetCmd.Flags().BoolVar(&greetJSON, "json", false, "Output in JSON format")
}
