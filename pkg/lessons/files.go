package lessons

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlotufo/primer/pkg/core"
)

// fileContent is the fixed two-line payload of the round-trip demo.
const fileContent = "Hello, World!\nThis is a test file.\n"

// Files demonstrates a file round-trip: write, read back whole,
// read line by line, then remove. The scratch file exists only for
// the duration of the lesson.
func Files() core.Lesson {
	return core.Lesson{
		ID:    "files/roundtrip",
		Topic: "files",
		Title: "File Operations",
		Run:   runFiles,
	}
}

func runFiles(ctx context.Context, env *core.Env) error {
	if env.Scratch == nil {
		return errors.New("file lesson requires a workspace")
	}

	name := env.ScratchFile
	if name == "" {
		name = "temp_example.txt"
	}

	if err := env.Scratch.WriteScratch(name, []byte(fileContent)); err != nil {
		return fmt.Errorf("write scratch: %w", err)
	}
	fmt.Fprintf(env.Out, "Wrote %s\n", name)

	data, err := env.Scratch.ReadScratch(name)
	if err != nil {
		return fmt.Errorf("read scratch: %w", err)
	}
	fmt.Fprintf(env.Out, "File content:\n%s", data)
	if string(data) != fileContent {
		return fmt.Errorf("round-trip mismatch: wrote %d bytes, read back %d", len(fileContent), len(data))
	}

	lines, err := env.Scratch.ReadScratchLines(name)
	if err != nil {
		return fmt.Errorf("read scratch lines: %w", err)
	}
	for _, line := range lines {
		fmt.Fprintf(env.Out, "Line: %s\n", line)
	}

	if err := env.Scratch.RemoveScratch(name); err != nil {
		return fmt.Errorf("remove scratch: %w", err)
	}
	if env.Scratch.ScratchExists(name) {
		return fmt.Errorf("%s still exists after removal", name)
	}
	fmt.Fprintf(env.Out, "Removed %s\n", name)

	return nil
}
