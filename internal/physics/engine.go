package physics

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// subEpsilon absorbs floating-point residue when splitting dt into substeps.
const subEpsilon = 1e-12

// Engine owns the ball, the wall colliders and the hole.
type Engine struct {
	opts Options

	pos   core.Vec3
	vel   core.Vec3
	start core.Vec3

	strokes  int
	captured bool

	walls []WallSpec
	boxes []core.Box
	hole  Hole

	lastMoving time.Time
}

// New creates an engine with the ball resting on the tee.
func New(opts Options) *Engine {
	opts = opts.sanitize()
	e := &Engine{
		opts: opts,
		hole: opts.Hole,
	}
	e.start = e.rest(opts.Start)
	e.pos = e.start
	e.SetColliders(opts.Walls)
	e.lastMoving = opts.Clock()
	return e
}

// rest lifts p to resting height on the ground.
func (e *Engine) rest(p core.Vec3) core.Vec3 {
	p.Y = e.opts.GroundY + e.opts.Radius
	return p
}

// ApplyShot strikes the ball along the horizontal part of direction.
// Negative power counts as zero. Shots are ignored while the ball is in
// the cup or when direction has no horizontal component.
func (e *Engine) ApplyShot(direction core.Vec3, power float64) {
	if e.captured {
		return
	}
	dir := direction.Flat().Normalize()
	if dir.IsZero() {
		return
	}
	if !(power > 0) || math.IsInf(power, 0) {
		power = 0
	}

	e.vel = dir.Scale(power)
	e.strokes++
	e.lastMoving = e.opts.Clock()
	e.call("OnStroke", func() { e.fire(e.opts.Callbacks.OnStroke, e.strokes) })
}

// Update advances the simulation by dt seconds.
func (e *Engine) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) || e.captured {
		return
	}

	for remaining := dt; remaining > subEpsilon; {
		h := math.Min(remaining, MaxSubstep)
		if e.step(h) {
			return
		}
		remaining -= h
	}

	if e.vel.IsZero() && e.opts.Clock().Sub(e.lastMoving) > e.opts.StuckTimeout {
		e.ResetToStart()
	}
}

// step runs one substep and reports whether the ball was captured.
func (e *Engine) step(h float64) bool {
	candidate := e.pos.Add(e.vel.Scale(h))

	if e.crossesHole(e.pos, candidate) && e.vel.Len() <= e.opts.SinkSpeed {
		e.capture()
		return true
	}

	e.pos = candidate
	if floor := e.opts.GroundY + e.opts.Radius; e.pos.Y < floor {
		e.pos.Y = floor
		if e.vel.Y < 0 {
			e.vel.Y = 0
		}
	}

	for i := range e.boxes {
		e.collide(e.boxes[i])
	}

	e.vel = e.vel.Scale(math.Exp(-e.opts.Friction * h))

	if e.vel.IsZero() || e.vel.Len() < e.opts.RestThreshold {
		if !e.vel.IsZero() {
			e.vel = core.Vec3{}
			e.call("OnStop", e.opts.Callbacks.OnStop)
		}
		return false
	}

	e.lastMoving = e.opts.Clock()
	e.call("OnMove", e.opts.Callbacks.OnMove)
	return false
}

// crossesHole tests the path from a to b against the cup on the ground plane.
func (e *Engine) crossesHole(a, b core.Vec3) bool {
	c := e.hole.Position.Flat()
	closest := core.ClosestOnSegment(a.Flat(), b.Flat(), c)
	return closest.DistXZ(c) <= e.hole.Radius
}

func (e *Engine) capture() {
	e.pos = e.rest(e.hole.Position)
	e.vel = core.Vec3{}
	e.captured = true
	e.call("OnHole", func() { e.fire(e.opts.Callbacks.OnHole, e.strokes) })
	e.call("OnSinkSound", e.opts.Callbacks.OnSinkSound)
}

// ResetToStart puts the ball back on the tee and clears the stroke count.
func (e *Engine) ResetToStart() {
	e.pos = e.start
	e.vel = core.Vec3{}
	e.strokes = 0
	e.captured = false
	e.lastMoving = e.opts.Clock()
	e.call("OnStroke", func() { e.fire(e.opts.Callbacks.OnStroke, 0) })
}

// Teleport moves the ball to p and makes p the new tee.
// A point below the resting height is lifted onto the ground, any other
// point is kept exactly. The stroke count is kept.
func (e *Engine) Teleport(p core.Vec3) {
	if floor := e.opts.GroundY + e.opts.Radius; p.Y < floor {
		p.Y = floor
	}
	e.start = p
	e.pos = p
	e.vel = core.Vec3{}
	e.captured = false
	e.lastMoving = e.opts.Clock()
}

// SetColliders replaces every wall.
func (e *Engine) SetColliders(walls []WallSpec) {
	e.walls = append([]WallSpec(nil), walls...)
	e.boxes = make([]core.Box, len(walls))
	for i, w := range walls {
		e.boxes[i] = w.Box(e.opts.GroundY)
	}
}

// SetHole replaces the cup and releases a captured ball.
func (e *Engine) SetHole(position core.Vec3, radius float64) {
	e.hole = Hole{Position: position, Radius: math.Max(radius, 0)}
	e.captured = false
}

// SetGreen changes the surface between holes. Invalid values are
// repaired the same way New repairs them.
func (e *Engine) SetGreen(friction, sinkSpeed float64) {
	e.opts.Friction = friction
	e.opts.SinkSpeed = sinkSpeed
	e.opts = e.opts.sanitize()
}

// SetCallbacks replaces the event handlers.
func (e *Engine) SetCallbacks(cb Callbacks) {
	e.opts.Callbacks = cb
}

// Position returns the ball center.
func (e *Engine) Position() core.Vec3 { return e.pos }

// Velocity returns the ball velocity in meters per second.
func (e *Engine) Velocity() core.Vec3 { return e.vel }

// Speed returns the length of the velocity.
func (e *Engine) Speed() float64 { return e.vel.Len() }

// Strokes returns the shots taken since the last reset.
func (e *Engine) Strokes() int { return e.strokes }

// Captured reports whether the ball is in the cup.
func (e *Engine) Captured() bool { return e.captured }

// Moving reports whether the ball has any velocity.
func (e *Engine) Moving() bool { return !e.vel.IsZero() }

// Start returns the tee position.
func (e *Engine) Start() core.Vec3 { return e.start }

// Hole returns the cup.
func (e *Engine) Hole() Hole { return e.hole }

// Radius returns the ball radius.
func (e *Engine) Radius() float64 { return e.opts.Radius }

// Walls returns a copy of the wall specs in declaration order.
func (e *Engine) Walls() []WallSpec {
	return append([]WallSpec(nil), e.walls...)
}

// Colliders returns a copy of the wall boxes in declaration order.
func (e *Engine) Colliders() []core.Box {
	return append([]core.Box(nil), e.boxes...)
}

// Options returns the effective settings.
func (e *Engine) Options() Options { return e.opts }

func (e *Engine) fire(fn func(int), n int) {
	if fn != nil {
		fn(n)
	}
}

// call runs a callback, logging and swallowing any panic.
func (e *Engine) call(name string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.opts.Logger.Warn("physics: callback panicked", "callback", name, "panic", r)
		}
	}()
	fn()
}
