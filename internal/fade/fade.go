// Package fade delays count changes behind a short fade-out.
package fade

import (
	"time"

	"sectiongrid/internal/input"
)

// DefaultDelay between a submission and its commit.
const DefaultDelay = 300 * time.Millisecond

// Controller is Idle until a submission arrives, then Transitioning until the
// delay elapses. A new submission while transitioning replaces the pending
// text and restarts the delay.
type Controller struct {
	delay    time.Duration
	pending  string
	started  time.Time
	deadline time.Time
	active   bool
}

// NewController returns an idle controller. A non-positive delay uses
// DefaultDelay.
func NewController(delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Controller{delay: delay}
}

// Delay between submission and commit.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// Submit starts (or restarts) the transition for raw.
func (c *Controller) Submit(raw string, now time.Time) {
	c.pending = raw
	c.started = now
	c.deadline = now.Add(c.delay)
	c.active = true
}

// Transitioning reports whether a commit is pending.
func (c *Controller) Transitioning() bool {
	return c.active
}

// Tick commits the pending value once the deadline has passed. The value is
// clamped against max at commit time, so a resize during the fade is honoured.
func (c *Controller) Tick(now time.Time, max int) (int, bool) {
	if !c.active || now.Before(c.deadline) {
		return 0, false
	}
	c.active = false
	raw := c.pending
	c.pending = ""
	return input.Clamp(raw, max), true
}

// Opacity of the grid during the transition: 1 when idle, falling to 0 as
// the deadline approaches.
func (c *Controller) Opacity(now time.Time) float64 {
	if !c.active {
		return 1
	}
	elapsed := now.Sub(c.started)
	if elapsed <= 0 {
		return 1
	}
	if elapsed >= c.delay {
		return 0
	}
	return 1 - float64(elapsed)/float64(c.delay)
}
