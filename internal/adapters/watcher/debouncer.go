package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the default time window for coalescing file
// events. Editors often emit several events per save.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid successions of triggers into one callback per
// quiet window.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	pending  bool
	window   time.Duration
	callback func()
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Add registers a trigger. The callback fires once the window elapses
// without further triggers.
func (d *Debouncer) Add() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	// Protects against a race with Flush.
	if !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Flush immediately invokes the callback if a trigger is pending. It blocks
// until the callback completes, making it suitable for graceful shutdown.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than firing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if pending && d.callback != nil {
		d.callback()
	}
}
