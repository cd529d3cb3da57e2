package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected time.Duration
	}{
		{"default rate", 60, time.Second / 60},
		{"slow", 10, 100 * time.Millisecond},
		{"zero falls back to default", 0, time.Second / 60},
		{"negative falls back to default", -5, time.Second / 60},
		{"fast", 120, time.Second / 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tickInterval(tc.rate); got != tc.expected {
				t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
			}
		})
	}
}
