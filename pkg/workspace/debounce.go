package workspace

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of events for the same type/name pair
// into a single delivery. Editors and atomic renames produce several
// fsnotify events per logical change.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the debounce delay. Repeated calls for
// the same type/name before the delay elapses reset the timer.
func (d *debouncer) add(e Event, fire func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	key := string(e.Type) + ":" + e.Name
	if t, ok := d.timers[key]; ok {
		t.Reset(d.delay)
		return
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, key)
		stopped := d.stopped
		d.mu.Unlock()

		if stopped {
			return
		}
		fire(e)
	})
}

// stopAndWait stops accepting new events, cancels pending timers and
// waits up to timeout for in-flight deliveries to finish.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			// Timer never fired; release its waitgroup slot.
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
