package lessons

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mlotufo/primer/pkg/core"
)

func runLesson(t *testing.T, l core.Lesson, env *core.Env) string {
	t.Helper()
	var out bytes.Buffer
	if env == nil {
		env = &core.Env{}
	}
	env.Out = &out
	if err := l.Run(context.Background(), env); err != nil {
		t.Fatalf("lesson %s failed: %v", l.ID, err)
	}
	return out.String()
}

func TestPersonLesson(t *testing.T) {
	out := runLesson(t, Person(), nil)

	want := "Hello, my name is Alice and I'm 25 years old.\nIs adult? true\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestNumbersLesson(t *testing.T) {
	out := runLesson(t, Numbers(), nil)

	for _, want := range []string{
		"5 + 3 = 8",
		"Sum: 15",
		"Average: 3",
		"Max: 5",
		"Min: 1",
		"10 is positive and even",
		"-7 is negative and odd",
		"0 is zero and even",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoopsLesson(t *testing.T) {
	out := runLesson(t, Loops(), nil)

	for _, want := range []string{
		"Count: 0",
		"Count: 4",
		"Fruit: cherry",
		"2: cherry",
		"While count: 2",
		"Squares: [0 1 4 9 16]",
		"Even squares: [0 4 16 36 64]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "While count: 3") {
		t.Error("condition-only loop ran too far")
	}
}

func TestCollectionsLesson(t *testing.T) {
	out := runLesson(t, Collections(), nil)

	for _, want := range []string{
		"Slice: [1 2 3 4 5 6 7 8]",
		"country: USA",
		"age: 30",
		"Set: [1 2 3 4 5 6]",
		"Array: [1 2 3]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestErrorHandlingLesson(t *testing.T) {
	out := runLesson(t, ErrorHandling(), nil)

	for _, want := range []string{
		"Division result: 5",
		"Error: division by zero",
		"Successfully parsed: 123",
		"Invalid number:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if !strings.HasSuffix(out, "cleanup ran\n") {
		t.Errorf("deferred cleanup should print last:\n%s", out)
	}
}
