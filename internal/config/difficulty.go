package config

import "math"

// DifficultyManager calculates course parameters from session progress.
// Greens get faster and cups get pickier as holes are completed.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after the given
// number of completed holes.
func (d *DifficultyManager) Level(holesCompleted int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "holes" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(holesCompleted)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SinkSpeed returns the cup capture speed for the current level.
func (d *DifficultyManager) SinkSpeed(base float64, holesCompleted int) float64 {
	level := d.Level(holesCompleted)
	reduction := clampF(d.cfg.Scaling.SinkSpeedReduction, 0.0, 0.9)
	return base * (1.0 - level*reduction)
}

// Friction returns the green friction for the current level.
// Friction shrinks as the level rises so the ball runs further.
func (d *DifficultyManager) Friction(base float64, holesCompleted int) float64 {
	level := d.Level(holesCompleted)
	return base / (1.0 + level*math.Max(d.cfg.Scaling.GreenSpeedup, 0))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
