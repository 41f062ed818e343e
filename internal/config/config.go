// Package config provides YAML-based game configuration loading and
// difficulty management for the minigolf platform.
package config

import "time"

// GolfConfig contains all configuration for the minigolf game.
type GolfConfig struct {
	Physics    GolfPhysics      `yaml:"physics"`
	Aim        GolfAim          `yaml:"aim"`
	Frame      GolfFrame        `yaml:"frame"`
	Audio      GolfAudio        `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GolfPhysics defines ball and course physics. Distances are meters.
type GolfPhysics struct {
	BallRadius    float64       `yaml:"ball_radius"`
	BallMass      float64       `yaml:"ball_mass"`
	GroundY       float64       `yaml:"ground_y"`
	Friction      float64       `yaml:"friction"`    // exponential decay per second
	Restitution   float64       `yaml:"restitution"` // 0 = dead stop, 1 = perfect bounce
	RestThreshold float64       `yaml:"rest_threshold"`
	SinkSpeed     float64       `yaml:"sink_speed"`
	StuckTimeout  time.Duration `yaml:"stuck_timeout"`
}

// GolfAim defines how key presses and mouse drags become shots.
type GolfAim struct {
	PowerScale     float64 `yaml:"power_scale"`     // shot power per meter of drag
	MaxPower       float64 `yaml:"max_power"`       // hard cap on shot power
	MinDrag        float64 `yaml:"min_drag"`        // drags shorter than this are ignored
	DefaultPower   float64 `yaml:"default_power"`   // keyboard power at the start of a hole
	PowerStep      float64 `yaml:"power_step"`      // keyboard power change per press
	AngleStepDeg   float64 `yaml:"angle_step_deg"`  // keyboard rotation per press
	PreviewSeconds float64 `yaml:"preview_seconds"` // trajectory preview horizon
}

// GolfFrame defines frame timing.
type GolfFrame struct {
	MaxDelta time.Duration `yaml:"max_delta"` // longer frames are clamped before simulating
}

// GolfAudio defines sound settings.
type GolfAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "holes" or "none"
	MaxAt int    `yaml:"max_at"` // holes completed at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	SinkSpeedReduction float64 `yaml:"sink_speed_reduction"` // fraction of sink speed removed
	GreenSpeedup       float64 `yaml:"green_speedup"`        // friction is divided by 1+speedup
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
