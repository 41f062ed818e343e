// Package physics simulates a golf ball rolling on a flat course.
//
// The ball moves on the X/Z plane under exponential friction, bounces off
// axis-aligned walls and drops into the cup only when it crosses it slowly
// enough. Update integrates in fixed-size substeps so the result does not
// depend on the caller's frame rate.
//
// An Engine is owned by a single goroutine (the game loop) and is not safe
// for concurrent use.
package physics

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// MaxSubstep is the largest integration step in seconds.
const MaxSubstep = 1.0 / 120

// DefaultWallHeight is used when a wall leaves Height unset.
const DefaultWallHeight = 0.5

const (
	impactDamping     = 0.95
	degenerateDamping = 0.5
	separationSlop    = 1e-6
	minRestThreshold  = 1e-6
)

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Callbacks are invoked synchronously from ApplyShot, Update and
// ResetToStart. Any of them may be nil.
type Callbacks struct {
	OnStroke    func(strokes int)
	OnHole      func(strokes int)
	OnMove      func()
	OnStop      func()
	OnSinkSound func()
}

// Options configures an Engine. Start from DefaultOptions.
type Options struct {
	Radius        float64 // ball radius in meters
	Mass          float64 // kilograms, informational only
	GroundY       float64
	Friction      float64 // exponential decay rate per second
	Restitution   float64 // fraction of normal speed kept after a bounce
	RestThreshold float64 // below this speed the ball is stopped
	SinkSpeed     float64 // maximum speed at which the cup captures the ball
	StuckTimeout  time.Duration

	Start core.Vec3 // tee position; Y is forced to resting height
	Hole  Hole
	Walls []WallSpec

	Callbacks Callbacks
	Clock     Clock
	Logger    *log.Logger
}

// DefaultOptions returns the standard ball and course settings.
func DefaultOptions() Options {
	return Options{
		Radius:        0.12,
		Mass:          0.045,
		GroundY:       0,
		Friction:      3.0,
		Restitution:   0.6,
		RestThreshold: 0.02,
		SinkSpeed:     1.5,
		StuckTimeout:  4 * time.Second,
		Hole:          Hole{Position: core.V3(5, 0, 0), Radius: 0.25},
	}
}

// sanitize repairs values that would break the integrator.
func (o Options) sanitize() Options {
	def := DefaultOptions()
	if !(o.Radius > 0) {
		o.Radius = def.Radius
	}
	if !(o.Friction >= 0) {
		o.Friction = 0
	}
	o.Restitution = core.ClampF(o.Restitution, 0, 1)
	// Friction only decays speed, so a zero threshold would never stop the ball.
	if !(o.RestThreshold >= minRestThreshold) {
		o.RestThreshold = minRestThreshold
	}
	if !(o.SinkSpeed >= 0) {
		o.SinkSpeed = 0
	}
	if o.StuckTimeout <= 0 {
		o.StuckTimeout = def.StuckTimeout
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}
