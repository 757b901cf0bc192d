package lessons

import (
	"context"
	"fmt"

	"github.com/mlotufo/primer/pkg/core"
)

// Person demonstrates a struct with derived values.
func Person() core.Lesson {
	return core.Lesson{
		ID:    "basics/person",
		Topic: "basics",
		Title: "Structs and Methods",
		Run:   runPerson,
	}
}

func runPerson(ctx context.Context, env *core.Env) error {
	p := core.NewPerson("Alice", 25)
	fmt.Fprintln(env.Out, p.Greet())
	fmt.Fprintf(env.Out, "Is adult? %t\n", p.IsAdult())
	return nil
}

// Numbers demonstrates the arithmetic helpers: addition, sequence
// statistics and sign/parity classification.
func Numbers() core.Lesson {
	return core.Lesson{
		ID:    "basics/numbers",
		Topic: "basics",
		Title: "Numbers and Statistics",
		Run:   runNumbers,
	}
}

func runNumbers(ctx context.Context, env *core.Env) error {
	fmt.Fprintf(env.Out, "5 + 3 = %d\n", core.Add(5, 3))

	stats := core.Summarize([]int{1, 2, 3, 4, 5})
	fmt.Fprintf(env.Out, "Sum: %d\n", stats.Sum)
	fmt.Fprintf(env.Out, "Average: %g\n", stats.Average)
	fmt.Fprintf(env.Out, "Max: %d\n", *stats.Max)
	fmt.Fprintf(env.Out, "Min: %d\n", *stats.Min)

	for _, n := range []int{10, -7, 0} {
		fmt.Fprintln(env.Out, core.Classify(n))
	}
	return nil
}
