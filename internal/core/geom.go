// Package core provides fundamental types and utilities for the minigolf platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned box in world space.
type Box struct {
	Min, Max Vec3
}

// BoxFromCenter builds a box from its center and full extents.
func BoxFromCenter(center, size Vec3) Box {
	half := size.Scale(0.5)
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		X: ClampF(p.X, b.Min.X, b.Max.X),
		Y: ClampF(p.Y, b.Min.Y, b.Max.Y),
		Z: ClampF(p.Z, b.Min.Z, b.Max.Z),
	}
}

// ContainsXZ reports whether p lies inside the box footprint on the ground plane.
func (b Box) ContainsXZ(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Vec3{minF(b.Min.X, o.Min.X), minF(b.Min.Y, o.Min.Y), minF(b.Min.Z, o.Min.Z)},
		Max: Vec3{maxF(b.Max.X, o.Max.X), maxF(b.Max.Y, o.Max.Y), maxF(b.Max.Z, o.Max.Z)},
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
