package lessons

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mlotufo/primer/pkg/core"
	"github.com/mlotufo/primer/pkg/workspace"
)

func TestFilesLesson(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		ws, err := workspace.New(t.TempDir(), nil)
		if err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		env := &core.Env{Out: &out, Scratch: ws, ScratchFile: "temp_example.txt"}
		if err := Files().Run(context.Background(), env); err != nil {
			t.Fatalf("files lesson failed: %v", err)
		}

		for _, want := range []string{
			"Wrote temp_example.txt",
			"Hello, World!",
			"This is a test file.",
			"Line: Hello, World!",
			"Line: This is a test file.",
			"Removed temp_example.txt",
		} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output missing %q:\n%s", want, out.String())
			}
		}

		// The scratch file is scoped to the lesson call.
		if ws.ScratchExists("temp_example.txt") {
			t.Error("scratch file still exists after the lesson")
		}
	})

	t.Run("Custom Scratch Name", func(t *testing.T) {
		ws, err := workspace.New(t.TempDir(), nil)
		if err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		env := &core.Env{Out: &out, Scratch: ws, ScratchFile: "notes.txt"}
		if err := Files().Run(context.Background(), env); err != nil {
			t.Fatalf("files lesson failed: %v", err)
		}
		if !strings.Contains(out.String(), "Wrote notes.txt") {
			t.Errorf("expected custom scratch name in output:\n%s", out.String())
		}
	})

	t.Run("Missing Workspace", func(t *testing.T) {
		var out bytes.Buffer
		env := &core.Env{Out: &out}
		if err := Files().Run(context.Background(), env); err == nil {
			t.Error("expected error without a workspace")
		}
	})
}
