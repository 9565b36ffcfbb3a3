package quiz

import "quizmaker/internal/models"

// Countdown is a one-second countdown clock. It is advanced explicitly by
// Tick and is not safe for concurrent use; Session serialises access.
type Countdown struct {
	remaining int
	running   bool
	expired   bool
}

// Start resets the clock to durationSeconds and starts it. A zero duration
// means the test is untimed: the clock never runs and never expires.
func (c *Countdown) Start(durationSeconds int) {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	c.remaining = durationSeconds
	c.running = durationSeconds > 0
	c.expired = false
}

// Tick advances the clock by one second. It returns true exactly once, on
// the tick that brings the clock to zero. Ticks on a stopped clock do nothing.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.running = false
	c.expired = true
	return true
}

// Stop halts the clock without signalling time-up
func (c *Countdown) Stop() {
	c.running = false
}

// Running reports whether ticks still count down
func (c *Countdown) Running() bool {
	return c.running
}

// Expired reports whether the clock ran out
func (c *Countdown) Expired() bool {
	return c.expired
}

// Remaining returns the seconds left
func (c *Countdown) Remaining() int {
	return c.remaining
}

// State returns a snapshot of the clock
func (c *Countdown) State() models.TimerState {
	return models.TimerState{RemainingSeconds: c.remaining, Running: c.running}
}
