package selection

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet window applied to filter input.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces rapid values so only the last one pushed within the
// quiet window is delivered. Each Push cancels the pending delivery and
// reschedules it; superseded values are dropped, never queued.
type Debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	pending string
	seq     uint64
	stopped bool
	fn      func(string)
}

// NewDebouncer returns a Debouncer that calls fn with the last value after
// delay of inactivity.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Push records v and restarts the quiet window.
func (d *Debouncer) Push(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = v
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(seq)
	})
}

// A timer that already fired cannot be stopped, so stale callbacks compare
// their sequence number before delivering.
func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if d.stopped || seq != d.seq || d.timer == nil {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}

// Pending reports whether a value is waiting for the quiet window to elapse.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Flush delivers the pending value immediately. It reports whether there was
// one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.seq++
	v := d.pending
	d.mu.Unlock()

	d.fn(v)
	return true
}

// Stop discards any pending value and ignores later pushes.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
