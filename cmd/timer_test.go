package cmd

import (
	"testing"
	"time"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h30m"},
		{45 * time.Second, "45s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatMinutes(tt.d); got != tt.want {
				t.Errorf("formatMinutes(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
