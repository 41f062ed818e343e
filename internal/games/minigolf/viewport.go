package minigolf

import (
	"math"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// cellAspect is how many columns make up one row visually.
const cellAspect = 2.0

// Viewport maps the ground plane onto screen cells.
// World +X runs right and +Z runs down.
type Viewport struct {
	Area   core.Rect // screen region the hole is drawn into
	Origin core.Vec3 // world point drawn at the top-left of Area
	Scale  float64   // columns per meter; rows per meter is Scale/cellAspect
}

// FitViewport scales world bounds to fill area while keeping proportions.
func FitViewport(bounds core.Box, area core.Rect) Viewport {
	w := math.Max(bounds.Max.X-bounds.Min.X, 0.1)
	d := math.Max(bounds.Max.Z-bounds.Min.Z, 0.1)

	scale := math.Min(float64(area.W-1)/w, cellAspect*float64(area.H-1)/d)
	if scale <= 0 {
		scale = 1
	}

	// Center the content inside the area.
	usedW := w * scale
	usedH := d * scale / cellAspect
	origin := core.V3(
		bounds.Min.X-(float64(area.W-1)-usedW)/2/scale,
		0,
		bounds.Min.Z-(float64(area.H-1)-usedH)/2*cellAspect/scale,
	)

	return Viewport{Area: area, Origin: origin, Scale: scale}
}

// ToScreen returns the cell containing world point p.
func (v Viewport) ToScreen(p core.Vec3) (int, int) {
	x := v.Area.X + int(math.Round((p.X-v.Origin.X)*v.Scale))
	y := v.Area.Y + int(math.Round((p.Z-v.Origin.Z)*v.Scale/cellAspect))
	return x, y
}

// ToWorld returns the ground point at the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Vec3 {
	return core.V3(
		v.Origin.X+float64(x-v.Area.X)/v.Scale,
		0,
		v.Origin.Z+float64(y-v.Area.Y)*cellAspect/v.Scale,
	)
}

// BoxToRect returns the cells covered by a box footprint.
// Every box covers at least one cell.
func (v Viewport) BoxToRect(b core.Box) core.Rect {
	x0, y0 := v.ToScreen(b.Min)
	x1, y1 := v.ToScreen(b.Max)
	return core.NewRect(x0, y0, core.Max(x1-x0+1, 1), core.Max(y1-y0+1, 1))
}
