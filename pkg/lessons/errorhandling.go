package lessons

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mlotufo/primer/pkg/core"
)

var errDivideByZero = errors.New("division by zero")

// ErrorHandling demonstrates explicit error returns, sentinel errors
// and deferred cleanup. The errors it provokes are caught and printed
// as lesson output; the lesson itself never fails.
func ErrorHandling() core.Lesson {
	return core.Lesson{
		ID:    "flow/errors",
		Topic: "flow",
		Title: "Error Handling",
		Run:   runErrorHandling,
	}
}

func runErrorHandling(ctx context.Context, env *core.Env) error {
	// Runs last, whatever happens above: the finally of Go.
	defer fmt.Fprintln(env.Out, "cleanup ran")

	if q, err := divide(10, 2); err != nil {
		fmt.Fprintf(env.Out, "Error: %v\n", err)
	} else {
		fmt.Fprintf(env.Out, "Division result: %g\n", q)
	}

	if _, err := divide(10, 0); err != nil {
		fmt.Fprintf(env.Out, "Error: %v\n", err)
	}

	if v, err := strconv.Atoi("123"); err != nil {
		fmt.Fprintf(env.Out, "Invalid number: %v\n", err)
	} else {
		fmt.Fprintf(env.Out, "Successfully parsed: %d\n", v)
	}

	if _, err := strconv.Atoi("not-a-number"); err != nil {
		fmt.Fprintf(env.Out, "Invalid number: %v\n", err)
	}

	return nil
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}
