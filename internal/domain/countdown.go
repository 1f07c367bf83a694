package domain

import "time"

// CountdownStatus represents the current state of a countdown.
type CountdownStatus string

const (
	CountdownRunning CountdownStatus = "running"
	CountdownPaused  CountdownStatus = "paused"
	CountdownDone    CountdownStatus = "done"
)

// Countdown tracks a timer counting down to a target end time. Pausing
// freezes the remaining duration; resuming recomputes a fresh end time from
// the frozen value, so time spent paused never counts against the timer.
type Countdown struct {
	Label    string
	Duration time.Duration

	Status    CountdownStatus
	StartedAt time.Time

	endTime time.Time
	frozen  time.Duration
}

// NewCountdown starts a countdown for the given duration.
func NewCountdown(duration time.Duration, label string) *Countdown {
	now := time.Now()
	return &Countdown{
		Label:     label,
		Duration:  duration,
		Status:    CountdownRunning,
		StartedAt: now,
		endTime:   now.Add(duration),
	}
}

// Remaining returns how much time is left, never negative. A running
// countdown that reaches zero transitions to done.
func (c *Countdown) Remaining() time.Duration {
	switch c.Status {
	case CountdownPaused:
		return c.frozen
	case CountdownDone:
		return 0
	}
	remaining := time.Until(c.endTime)
	if remaining <= 0 {
		c.Status = CountdownDone
		return 0
	}
	return remaining
}

// Pause freezes the remaining duration. No-op unless running.
func (c *Countdown) Pause() {
	if c.Status != CountdownRunning {
		return
	}
	c.frozen = c.Remaining()
	if c.Status == CountdownRunning {
		c.Status = CountdownPaused
	}
}

// Resume restarts a paused countdown from the frozen remaining duration.
func (c *Countdown) Resume() {
	if c.Status != CountdownPaused {
		return
	}
	c.endTime = time.Now().Add(c.frozen)
	c.frozen = 0
	c.Status = CountdownRunning
}

// Toggle pauses a running countdown or resumes a paused one.
func (c *Countdown) Toggle() {
	if c.Status == CountdownPaused {
		c.Resume()
	} else {
		c.Pause()
	}
}

// Reset restarts the countdown from its full duration, running.
func (c *Countdown) Reset() {
	now := time.Now()
	c.Status = CountdownRunning
	c.StartedAt = now
	c.endTime = now.Add(c.Duration)
	c.frozen = 0
}

// IsPaused reports whether the countdown is paused.
func (c *Countdown) IsPaused() bool {
	return c.Status == CountdownPaused
}

// IsDone reports whether the countdown has reached zero.
func (c *Countdown) IsDone() bool {
	if c.Status == CountdownRunning {
		c.Remaining()
	}
	return c.Status == CountdownDone
}
