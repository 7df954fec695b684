package core

import (
	"fmt"
	"time"
)

// Countdown tracks elapsed play time against an optional limit.
// Time spent paused does not count. A zero limit means untimed.
type Countdown struct {
	limit    time.Duration
	now      func() time.Time
	started  time.Time
	pausedAt time.Time
	paused   time.Duration // accumulated pause time
	running  bool
	isPaused bool
}

// NewCountdown creates a stopped countdown. now defaults to time.Now.
func NewCountdown(limit time.Duration, now func() time.Time) *Countdown {
	if now == nil {
		now = time.Now
	}
	return &Countdown{limit: limit, now: now}
}

// Start begins timing from zero.
func (c *Countdown) Start() {
	c.started = c.now()
	c.paused = 0
	c.running = true
	c.isPaused = false
}

// Restart is Start with a new limit.
func (c *Countdown) Restart(limit time.Duration) {
	c.limit = limit
	c.Start()
}

// Pause freezes elapsed time. Pausing twice is a no-op.
func (c *Countdown) Pause() {
	if !c.running || c.isPaused {
		return
	}
	c.pausedAt = c.now()
	c.isPaused = true
}

// Resume continues after Pause.
func (c *Countdown) Resume() {
	if !c.isPaused {
		return
	}
	c.paused += c.now().Sub(c.pausedAt)
	c.isPaused = false
}

// Toggle switches between paused and running.
func (c *Countdown) Toggle() {
	if c.isPaused {
		c.Resume()
	} else {
		c.Pause()
	}
}

// Paused reports whether the countdown is paused.
func (c *Countdown) Paused() bool {
	return c.isPaused
}

// Limit returns the configured limit.
func (c *Countdown) Limit() time.Duration {
	return c.limit
}

// Timed reports whether a limit is set.
func (c *Countdown) Timed() bool {
	return c.limit > 0
}

// Elapsed returns active play time.
func (c *Countdown) Elapsed() time.Duration {
	if !c.running {
		return 0
	}
	end := c.now()
	if c.isPaused {
		end = c.pausedAt
	}
	return end.Sub(c.started) - c.paused
}

// Remaining returns time left before the limit, never negative.
// Untimed countdowns always report zero.
func (c *Countdown) Remaining() time.Duration {
	if !c.Timed() {
		return 0
	}
	return max(c.limit-c.Elapsed(), 0)
}

// Expired reports whether a timed countdown has run out.
func (c *Countdown) Expired() bool {
	return c.Timed() && c.running && c.Elapsed() >= c.limit
}

// FormatClock renders d as mm:ss, rounding partial seconds up so a clock
// never shows 00:00 while time remains.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
