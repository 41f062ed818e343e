package physics

import (
	"math"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// WallSpec describes a wall by its center on the ground plane and its size.
// Width runs along X, Depth along Z.
type WallSpec struct {
	X, Z   float64
	Width  float64
	Depth  float64
	Height float64 // DefaultWallHeight when zero
}

// Box converts the wall into a collider standing on groundY.
func (w WallSpec) Box(groundY float64) core.Box {
	h := w.Height
	if h <= 0 {
		h = DefaultWallHeight
	}
	return core.BoxFromCenter(
		core.V3(w.X, groundY+h/2, w.Z),
		core.V3(math.Abs(w.Width), h, math.Abs(w.Depth)),
	)
}

// Hole is the cup. Only X/Z of Position matter.
type Hole struct {
	Position core.Vec3
	Radius   float64
}

// collide resolves the ball against one box.
func (e *Engine) collide(b core.Box) {
	closest := b.ClosestPoint(e.pos)
	// Walls block in the ground plane whatever their height.
	delta := e.pos.Sub(closest).Flat()
	dist := delta.Len()

	switch {
	case dist == 0:
		e.separate(b)
	case dist < e.opts.Radius:
		n := delta.Scale(1 / dist)
		e.pos = e.pos.Add(n.Scale(e.opts.Radius - dist + separationSlop))

		along := e.vel.Dot(n)
		if along >= 0 {
			// Already leaving the wall.
			return
		}
		vn := n.Scale(along)
		vt := e.vel.Sub(vn)
		e.vel = vt.Sub(vn.Scale(e.opts.Restitution)).Scale(impactDamping)
	}
}

// separate handles a ball whose center ended up inside a box. There is no
// usable contact normal, so the ball leaves through the nearest vertical face.
func (e *Engine) separate(b core.Box) {
	r := e.opts.Radius + separationSlop

	left := e.pos.X - b.Min.X
	right := b.Max.X - e.pos.X
	back := e.pos.Z - b.Min.Z
	front := b.Max.Z - e.pos.Z

	switch math.Min(math.Min(left, right), math.Min(back, front)) {
	case left:
		e.pos.X = b.Min.X - r
	case right:
		e.pos.X = b.Max.X + r
	case back:
		e.pos.Z = b.Min.Z - r
	default:
		e.pos.Z = b.Max.Z + r
	}
	e.vel = e.vel.Scale(degenerateDamping)
}
