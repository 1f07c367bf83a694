package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimerRecord is one completed countdown, persisted to history.
type TimerRecord struct {
	ID          string
	Label       string
	Duration    time.Duration
	StartedAt   time.Time
	CompletedAt time.Time
}

// NewTimerRecord builds a history record from a finished countdown.
func NewTimerRecord(c *Countdown) *TimerRecord {
	return &TimerRecord{
		ID:          uuid.New().String(),
		Label:       c.Label,
		Duration:    c.Duration,
		StartedAt:   c.StartedAt,
		CompletedAt: time.Now(),
	}
}
