package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultGolfConfig().Difficulty // initial 0.3, max at 10 holes

	tests := []struct {
		name     string
		enabled  bool
		holes    int
		expected float64
	}{
		{"start of session", true, 0, 0.3},
		{"halfway", true, 5, 0.65},
		{"capped at max", true, 25, 1.0},
		{"progression disabled", false, 25, 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(cfg)
			d.SetEnabled(tc.enabled)
			if got := d.Level(tc.holes); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level(%d) = %f, expected %f", tc.holes, got, tc.expected)
			}
		})
	}
}

func TestDifficultyTuning(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "holes", MaxAt: 4},
		Scaling:      ScalingConfig{SinkSpeedReduction: 0.5, GreenSpeedup: 1},
	})

	if got := d.SinkSpeed(2, 0); got != 2 {
		t.Errorf("SinkSpeed at level 0 = %f, expected 2", got)
	}
	if got := d.SinkSpeed(2, 4); math.Abs(got-1) > 1e-9 {
		t.Errorf("SinkSpeed at level 1 = %f, expected 1", got)
	}
	if got := d.Friction(3, 4); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Friction at level 1 = %f, expected 1.5", got)
	}
}

func TestDifficultyNoneProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "none"},
	})
	d.SetInitialLevel(2) // clamped

	if d.IsEnabled() {
		t.Error("progression type none should be disabled")
	}
	if got := d.Level(100); got != 1 {
		t.Errorf("Level() = %f, expected clamped initial level 1", got)
	}
}
