package core

import "math"

// Vec3 is a world-space vector in meters.
// The course lies in the X/Z plane; Y is height above the ground.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// LenSq returns the squared length.
func (a Vec3) LenSq() float64 {
	return a.Dot(a)
}

// Len returns the length.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize returns a unit vector in the direction of a.
// The zero vector is returned unchanged.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Flat drops the vertical component.
func (a Vec3) Flat() Vec3 {
	return Vec3{X: a.X, Z: a.Z}
}

// DistXZ returns the distance between a and b on the ground plane.
func (a Vec3) DistXZ(b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// IsZero reports whether every component is exactly zero.
func (a Vec3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

// Lerp interpolates between a and b by t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Heading builds a flat unit direction from an angle in radians.
// Angle 0 points along +X, π/2 along +Z.
func Heading(angle float64) Vec3 {
	return Vec3{X: math.Cos(angle), Z: math.Sin(angle)}
}

// ClosestOnSegment returns the point on segment [a, b] nearest to p.
// A degenerate segment returns a.
func ClosestOnSegment(a, b, p Vec3) Vec3 {
	ab := b.Sub(a)
	denom := ab.LenSq()
	if denom == 0 {
		return a
	}
	t := ClampF(p.Sub(a).Dot(ab)/denom, 0, 1)
	return a.Add(ab.Scale(t))
}
