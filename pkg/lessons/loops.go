package lessons

import (
	"context"
	"fmt"

	"github.com/mlotufo/primer/pkg/core"
)

// Loops demonstrates the for statement in its common shapes.
func Loops() core.Lesson {
	return core.Lesson{
		ID:    "flow/loops",
		Topic: "flow",
		Title: "Loops",
		Run:   runLoops,
	}
}

func runLoops(ctx context.Context, env *core.Env) error {
	fmt.Fprintln(env.Out, "-- counted loop --")
	for i := 0; i < 5; i++ {
		fmt.Fprintf(env.Out, "Count: %d\n", i)
	}

	fruits := []string{"apple", "banana", "cherry"}

	fmt.Fprintln(env.Out, "-- range over slice --")
	for _, fruit := range fruits {
		fmt.Fprintf(env.Out, "Fruit: %s\n", fruit)
	}

	fmt.Fprintln(env.Out, "-- range with index --")
	for i, fruit := range fruits {
		fmt.Fprintf(env.Out, "%d: %s\n", i, fruit)
	}

	fmt.Fprintln(env.Out, "-- condition-only loop --")
	count := 0
	for count < 3 {
		fmt.Fprintf(env.Out, "While count: %d\n", count)
		count++
	}

	fmt.Fprintln(env.Out, "-- building slices in a loop --")
	squares := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		squares = append(squares, i*i)
	}
	fmt.Fprintf(env.Out, "Squares: %v\n", squares)

	var evenSquares []int
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			evenSquares = append(evenSquares, i*i)
		}
	}
	fmt.Fprintf(env.Out, "Even squares: %v\n", evenSquares)

	return nil
}
