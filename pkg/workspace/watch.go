package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of change in the workspace.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the workspace.
type Event struct {
	Type      EventType
	Name      string
	Timestamp int64 // Unix timestamp
}

// String returns a compact human-readable form, e.g. "MODIFY .primer.yml".
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Name)
}

// Watch observes the workspace root and emits debounced change events
// until ctx is cancelled. Atomic-write temp files, the configured
// scratch file, and dotfiles other than .primer.yml are ignored: the
// scratch file churns on every file lesson run and would otherwise
// feed the watcher its own output.
func (w *Workspace) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.Path, err)
	}

	events := make(chan Event, 16)
	deb := newDebouncer(50 * time.Millisecond)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer deb.stopAndWait(time.Second)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case fe, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := w.mapEvent(fe)
				if !ok {
					continue
				}
				w.Logger.Debug("workspace event", "type", e.Type, "name", e.Name)
				deb.add(e, func(e Event) {
					defer func() {
						// The channel closes while in-flight timers drain.
						_ = recover()
					}()
					select {
					case events <- e:
					case <-ctx.Done():
					}
				})

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				w.Logger.Error("fsnotify error", "error", werr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		w.Logger.Error("watcher panic", "error", err)
	}))

	return events, nil
}

// mapEvent converts an fsnotify event into a workspace Event,
// reporting false for events that should be ignored.
func (w *Workspace) mapEvent(fe fsnotify.Event) (Event, bool) {
	base := filepath.Base(fe.Name)

	if strings.HasPrefix(base, TempFilePrefix) {
		return Event{}, false
	}
	if base == w.Config.ScratchFile {
		return Event{}, false
	}
	if strings.HasPrefix(base, ".") && base != ConfigFileName {
		return Event{}, false
	}

	var t EventType
	switch {
	case fe.Has(fsnotify.Create):
		t = EventCreate
	case fe.Has(fsnotify.Write):
		t = EventModify
	case fe.Has(fsnotify.Remove) || fe.Has(fsnotify.Rename):
		t = EventDelete
	default:
		return Event{}, false
	}

	return Event{
		Type:      t,
		Name:      base,
		Timestamp: time.Now().Unix(),
	}, true
}
