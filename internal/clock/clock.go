package clock

import "time"

// Source supplies timestamps. Implementations must be monotonic.
type Source interface {
	Now() time.Time
}

type systemSource struct{}

func (systemSource) Now() time.Time {
	return time.Now()
}

// System reads the process clock. time.Now carries a monotonic reading, so
// differences between its values are immune to wall-clock adjustments.
var System Source = systemSource{}

// Clock tracks accumulated active time across start/pause/reset cycles.
//
// While running, elapsed time is accumulated + (now - anchor). While paused,
// accumulated is the frozen total.
type Clock struct {
	src         Source
	anchor      time.Time
	running     bool
	accumulated time.Duration
}

// New creates a stopped Clock reading from src. A nil src uses System.
func New(src Source) *Clock {
	if src == nil {
		src = System
	}
	return &Clock{src: src}
}

// Start begins accumulating from now. Calling Start on a running clock is a
// no-op: the first anchor is kept.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.anchor = c.src.Now()
	c.running = true
}

// Pause folds the running interval into the accumulated total.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.accumulated = c.Elapsed()
	c.anchor = time.Time{}
	c.running = false
}

// Reset stops the clock and zeroes the accumulated total.
func (c *Clock) Reset() {
	c.anchor = time.Time{}
	c.running = false
	c.accumulated = 0
}

// Running reports whether the clock is accumulating.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the total active duration.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		return c.accumulated
	}
	d := c.src.Now().Sub(c.anchor)
	if d < 0 {
		d = 0
	}
	return c.accumulated + d
}
