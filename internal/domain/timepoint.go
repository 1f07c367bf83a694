// Package domain contains the core types for tock: time points, display
// styles, the countdown state machine, and timer history records.
package domain

import (
	"fmt"
	"time"
)

// TimePoint is either an absolute wall-clock moment (clock mode) or a
// remaining duration (timer mode). Exactly one of the two is meaningful,
// selected by IsTimer.
type TimePoint struct {
	Instant   time.Time
	Remaining time.Duration
	IsTimer   bool
}

// ClockPoint wraps a wall-clock instant.
func ClockPoint(t time.Time) TimePoint {
	return TimePoint{Instant: t}
}

// TimerPoint wraps a non-negative remaining duration.
func TimerPoint(remaining time.Duration) TimePoint {
	return TimePoint{Remaining: remaining, IsTimer: true}
}

// Text returns the HH:MM:SS display text for the point.
func (p TimePoint) Text() string {
	if p.IsTimer {
		return FormatDuration(p.Remaining)
	}
	return FormatClock(p.Instant)
}

// HMS returns the hour (mod 12), minute and second triple used by the
// analog face. Timer mode derives the triple from total remaining seconds.
func (p TimePoint) HMS() (hours, minutes, seconds int) {
	if p.IsTimer {
		total := ceilSeconds(p.Remaining)
		return (total / 3600) % 12, (total / 60) % 60, total % 60
	}
	return p.Instant.Hour() % 12, p.Instant.Minute(), p.Instant.Second()
}

// FormatClock formats a wall-clock instant as 24-hour HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDuration formats a remaining duration as HH:MM:SS. The duration is
// rounded up to the next whole second so a countdown never reads 00:00:00
// while time remains. Hours are unbounded, not wrapped to 24.
func FormatDuration(remaining time.Duration) string {
	total := ceilSeconds(remaining)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// ceilSeconds converts a duration to whole seconds, rounding up.
func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	s := int(d / time.Second)
	if d%time.Second != 0 {
		s++
	}
	return s
}
