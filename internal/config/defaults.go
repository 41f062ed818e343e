package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/minigolf.yaml
var defaultGolfYAML []byte

// DefaultGolfConfig returns the default minigolf configuration.
func DefaultGolfConfig() GolfConfig {
	return GolfConfig{
		Physics: GolfPhysics{
			BallRadius:    0.12,
			BallMass:      0.045,
			GroundY:       0,
			Friction:      1.5,
			Restitution:   0.55,
			RestThreshold: 0.02,
			SinkSpeed:     1.5,
			StuckTimeout:  4 * time.Second,
		},
		Aim: GolfAim{
			PowerScale:     4,
			MaxPower:       30,
			MinDrag:        0.02,
			DefaultPower:   6,
			PowerStep:      0.5,
			AngleStepDeg:   5,
			PreviewSeconds: 1.5,
		},
		Frame: GolfFrame{
			MaxDelta: 50 * time.Millisecond,
		},
		Audio: GolfAudio{
			Enabled: true,
			Volume:  0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "holes",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SinkSpeedReduction: 0.4,
				GreenSpeedup:       0.5,
			},
		},
	}
}
