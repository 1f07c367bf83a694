package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"morning", time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC), "10:00:00"},
		{"midnight", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "00:00:00"},
		{"evening", time.Date(2023, 6, 15, 23, 59, 59, 0, time.UTC), "23:59:59"},
		{"afternoon", time.Date(2023, 6, 15, 13, 5, 9, 0, time.UTC), "13:05:09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatClock(tt.t); got != tt.want {
				t.Errorf("FormatClock(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"one minute five", 65 * time.Second, "00:01:05"},
		{"rounds up partial second", 64*time.Second + 200*time.Millisecond, "00:01:05"},
		{"one millisecond shows a second", time.Millisecond, "00:00:01"},
		{"whole hour", time.Hour, "01:00:00"},
		{"hours unbounded", 25*time.Hour + 61*time.Second, "25:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

// A countdown must never display fewer seconds than actually remain.
func TestFormatDuration_CeilingProperty(t *testing.T) {
	for ms := 0; ms < 5000; ms += 37 {
		d := time.Duration(ms) * time.Millisecond
		got := FormatDuration(d)

		var h, m, s int
		if _, err := fmt.Sscanf(got, "%d:%d:%d", &h, &m, &s); err != nil {
			t.Fatalf("FormatDuration(%v) = %q, not HH:MM:SS", d, got)
		}
		shown := time.Duration(h*3600+m*60+s) * time.Second
		if shown < d {
			t.Errorf("FormatDuration(%v) = %q shows less time than remains", d, got)
		}
	}
}

func TestTimePoint_HMS(t *testing.T) {
	tests := []struct {
		name    string
		point   TimePoint
		h, m, s int
	}{
		{"clock wraps to 12h", ClockPoint(time.Date(2023, 1, 1, 15, 30, 45, 0, time.UTC)), 3, 30, 45},
		{"clock noon", ClockPoint(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)), 0, 0, 0},
		{"timer simple", TimerPoint(90 * time.Second), 0, 1, 30},
		{"timer hours wrap", TimerPoint(13*time.Hour + 2*time.Minute), 1, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, s := tt.point.HMS()
			if h != tt.h || m != tt.m || s != tt.s {
				t.Errorf("HMS() = %d:%d:%d, want %d:%d:%d", h, m, s, tt.h, tt.m, tt.s)
			}
		})
	}
}

func TestTimePoint_Text(t *testing.T) {
	clock := ClockPoint(time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC))
	if got := clock.Text(); got != "10:00:00" {
		t.Errorf("clock Text() = %v, want 10:00:00", got)
	}

	timer := TimerPoint(65 * time.Second)
	if got := timer.Text(); got != "00:01:05" {
		t.Errorf("timer Text() = %v, want 00:01:05", got)
	}
}
