package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitForEvent drains the channel until an event for name arrives or
// the timeout expires.
func waitForEvent(t *testing.T, events <-chan Event, name string, timeout time.Duration) (Event, bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return Event{}, false
			}
			if e.Name == name {
				return e, true
			}
		case <-deadline:
			return Event{}, false
		}
	}
}

func TestWatch(t *testing.T) {
	t.Run("Reports File Changes", func(t *testing.T) {
		dir := t.TempDir()
		ws, err := New(dir, nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := ws.Watch(ctx)
		require.NoError(t, err)

		// Give the watcher loop a moment to come up.
		time.Sleep(100 * time.Millisecond)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

		e, ok := waitForEvent(t, events, "notes.txt", 2*time.Second)
		require.True(t, ok, "expected an event for notes.txt")
		require.Contains(t, []EventType{EventCreate, EventModify}, e.Type)
	})

	t.Run("Ignores Scratch And Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		ws, err := New(dir, nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := ws.Watch(ctx)
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		// Scratch churn and atomic-write temp files must not surface.
		require.NoError(t, ws.WriteScratch(ws.Config.ScratchFile, []byte("scratch")))
		require.NoError(t, os.WriteFile(filepath.Join(dir, TempFilePrefix+"123"), []byte("tmp"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("dot"), 0644))

		select {
		case e, ok := <-events:
			if ok {
				t.Fatalf("unexpected event: %s", e)
			}
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("Config Change Surfaces", func(t *testing.T) {
		dir := t.TempDir()
		ws, err := New(dir, nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := ws.Watch(ctx)
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		require.NoError(t, SaveConfig(dir, DefaultConfig()))

		_, ok := waitForEvent(t, events, ConfigFileName, 2*time.Second)
		require.True(t, ok, "expected an event for %s", ConfigFileName)
	})

	t.Run("Cancel Closes Channel", func(t *testing.T) {
		ws, err := New(t.TempDir(), nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		events, err := ws.Watch(ctx)
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-events:
			if ok {
				// Drain anything in flight; channel must close eventually.
				for range events {
				}
			}
		case <-time.After(3 * time.Second):
			t.Fatal("events channel did not close after cancel")
		}
	})
}

func TestDebouncerCoalesces(t *testing.T) {
	deb := newDebouncer(30 * time.Millisecond)
	defer deb.stopAndWait(time.Second)

	fired := make(chan Event, 8)
	e := Event{Type: EventModify, Name: "a.txt"}
	for i := 0; i < 5; i++ {
		deb.add(e, func(e Event) { fired <- e })
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("debounced event never fired")
	}

	select {
	case extra := <-fired:
		t.Fatalf("burst should coalesce to one delivery, got extra %s", extra)
	case <-time.After(100 * time.Millisecond):
	}
}
