package minigolf

import (
	"math"

	"github.com/vovakirdan/tui-minigolf/internal/config"
	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// maxDragPreview caps the drag length used for the aim indicator.
const maxDragPreview = 10.0

// Aim holds the shot being lined up.
// Keyboard and mouse share the same angle and power.
type Aim struct {
	Angle float64 // radians, 0 points along +X
	Power float64

	cfg      config.GolfAim
	dragging bool
}

// NewAim creates an aim pointing along +X at the default power.
func NewAim(cfg config.GolfAim) Aim {
	a := Aim{cfg: cfg}
	a.Power = core.ClampF(cfg.DefaultPower, 0, cfg.MaxPower)
	return a
}

// Direction returns the unit shot direction on the ground plane.
func (a Aim) Direction() core.Vec3 {
	return core.Heading(a.Angle)
}

// Rotate turns the aim by steps of the configured angle step.
// Positive steps turn clockwise on screen.
func (a *Aim) Rotate(steps int) {
	a.Angle += float64(steps) * a.cfg.AngleStepDeg * math.Pi / 180
	a.Angle = math.Mod(a.Angle, 2*math.Pi)
	if a.Angle < 0 {
		a.Angle += 2 * math.Pi
	}
}

// AdjustPower changes power by steps of the configured power step.
func (a *Aim) AdjustPower(steps int) {
	a.Power = core.ClampF(a.Power+float64(steps)*a.cfg.PowerStep, 0, a.cfg.MaxPower)
}

// PowerFraction returns power relative to the maximum, in [0, 1].
func (a Aim) PowerFraction() float64 {
	if a.cfg.MaxPower <= 0 {
		return 0
	}
	return core.ClampF(a.Power/a.cfg.MaxPower, 0, 1)
}

// Dragging reports whether a mouse drag is in progress.
func (a Aim) Dragging() bool {
	return a.dragging
}

// BeginDrag starts a mouse drag.
func (a *Aim) BeginDrag() {
	a.dragging = true
}

// Drag points the aim from ball toward target and sets power from the
// distance. Drags shorter than the minimum leave the aim unchanged.
func (a *Aim) Drag(ball, target core.Vec3) {
	if !a.dragging {
		return
	}
	d := target.Sub(ball).Flat()
	dist := d.Len()
	if dist < a.cfg.MinDrag {
		return
	}
	a.Angle = math.Atan2(d.Z, d.X)
	a.Power = DragPower(math.Min(dist, maxDragPreview), a.cfg)
}

// EndDrag finishes a drag released at target and returns the shot.
// ok is false when the drag was too short to count.
func (a *Aim) EndDrag(ball, target core.Vec3) (dir core.Vec3, power float64, ok bool) {
	if !a.dragging {
		return core.Vec3{}, 0, false
	}
	a.dragging = false

	d := target.Sub(ball).Flat()
	dist := d.Len()
	if dist < a.cfg.MinDrag {
		return core.Vec3{}, 0, false
	}

	a.Angle = math.Atan2(d.Z, d.X)
	a.Power = DragPower(dist, a.cfg)
	return d.Normalize(), a.Power, true
}

// CancelDrag abandons a drag without shooting.
func (a *Aim) CancelDrag() {
	a.dragging = false
}

// DragPower converts a drag distance in meters into shot power.
func DragPower(dist float64, cfg config.GolfAim) float64 {
	return math.Min(math.Max(dist, 0)*cfg.PowerScale, cfg.MaxPower)
}
