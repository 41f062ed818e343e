package tui

import (
	"testing"
	"time"
)

func TestFrameElapsed(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	nominal := time.Second / 60

	tests := []struct {
		name  string
		prev  time.Time
		now   time.Time
		limit time.Duration
		want  time.Duration
	}{
		{"first tick", time.Time{}, base, 50 * time.Millisecond, nominal},
		{"regular tick", base, base.Add(20 * time.Millisecond), 50 * time.Millisecond, 20 * time.Millisecond},
		{"stall is capped", base, base.Add(2 * time.Second), 50 * time.Millisecond, 50 * time.Millisecond},
		{"no limit", base, base.Add(2 * time.Second), 0, 2 * time.Second},
		{"clock went back", base, base.Add(-time.Second), 50 * time.Millisecond, nominal},
		{"same instant", base, base, 50 * time.Millisecond, nominal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameElapsed(tt.prev, tt.now, 60, tt.limit); got != tt.want {
				t.Errorf("frameElapsed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoopIDsAreUnique(t *testing.T) {
	a, b := nextLoopID(), nextLoopID()
	if a == b {
		t.Errorf("loop IDs repeat: %d", a)
	}
}
