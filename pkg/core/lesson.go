package core

import (
	"context"
	"io"
	"log/slog"
)

// Scratch is the port lessons use for transient file demonstrations.
// Adhering to this interface keeps the lessons independent of the
// underlying storage (local workspace, in-memory fake in tests).
type Scratch interface {
	// WriteScratch persists data under name inside the workspace.
	WriteScratch(name string, data []byte) error

	// ReadScratch returns the full content of a scratch file.
	ReadScratch(name string) ([]byte, error)

	// ReadScratchLines returns the content split into lines,
	// without line terminators.
	ReadScratchLines(name string) ([]string, error)

	// RemoveScratch deletes a scratch file. Removing a file that
	// does not exist is not an error.
	RemoveScratch(name string) error

	// ScratchExists reports whether a scratch file is present.
	ScratchExists(name string) bool
}

// Env carries the execution environment handed to every lesson.
// Out receives the lesson's teaching output; the logger is for
// diagnostics only and never carries lesson content.
type Env struct {
	Out         io.Writer
	Logger      *slog.Logger
	Scratch     Scratch
	ScratchFile string
}

// RunFunc executes a lesson against the given environment.
type RunFunc func(ctx context.Context, env *Env) error

// Lesson is a single self-contained demonstration. Lessons never
// depend on each other's state; order only matters for presentation.
type Lesson struct {
	ID    string  `json:"id"`
	Topic string  `json:"topic"`
	Title string  `json:"title"`
	Run   RunFunc `json:"-"`
}

// Catalog is the port for the lesson collection.
type Catalog interface {
	// All returns every lesson in registration order.
	All() []Lesson

	// Get retrieves a lesson by its exact ID.
	Get(id string) (Lesson, error)

	// Match returns the lessons whose IDs match the glob pattern,
	// in registration order. An empty pattern matches everything.
	Match(pattern string) ([]Lesson, error)
}
