package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxFromCenter(t *testing.T) {
	b := BoxFromCenter(V3(0, 0.25, -2.5), V3(12, 0.5, 0.4))

	if !near(b.Min.X, -6) || !near(b.Max.X, 6) {
		t.Errorf("X extent = [%f, %f], expected [-6, 6]", b.Min.X, b.Max.X)
	}
	if !near(b.Min.Y, 0) || !near(b.Max.Y, 0.5) {
		t.Errorf("Y extent = [%f, %f], expected [0, 0.5]", b.Min.Y, b.Max.Y)
	}
	if !near(b.Min.Z, -2.7) || !near(b.Max.Z, -2.3) {
		t.Errorf("Z extent = [%f, %f], expected [-2.7, -2.3]", b.Min.Z, b.Max.Z)
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := Box{Min: V3(0, 0, 0), Max: V3(1, 1, 1)}

	tests := []struct {
		name     string
		p        Vec3
		expected Vec3
	}{
		{"inside", V3(0.5, 0.5, 0.5), V3(0.5, 0.5, 0.5)},
		{"left of box", V3(-2, 0.5, 0.5), V3(0, 0.5, 0.5)},
		{"above corner", V3(2, 3, -1), V3(1, 1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.ClosestPoint(tc.p)
			if got != tc.expected {
				t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoxUnion(t *testing.T) {
	a := Box{Min: V3(0, 0, 0), Max: V3(1, 1, 1)}
	b := Box{Min: V3(-1, 0, 2), Max: V3(0.5, 2, 3)}

	u := a.Union(b)
	if u.Min != V3(-1, 0, 0) || u.Max != V3(1, 2, 3) {
		t.Errorf("Union = %+v", u)
	}
}

func TestClosestOnSegment(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 0, 0)

	tests := []struct {
		name     string
		p        Vec3
		expected Vec3
	}{
		{"projects onto interior", V3(4, 0, 3), V3(4, 0, 0)},
		{"clamps before start", V3(-5, 0, 1), a},
		{"clamps after end", V3(20, 0, -1), b},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClosestOnSegment(a, b, tc.p); got != tc.expected {
				t.Errorf("ClosestOnSegment = %v, expected %v", got, tc.expected)
			}
		})
	}

	// Degenerate segment collapses to its start
	if got := ClosestOnSegment(a, a, V3(3, 0, 3)); got != a {
		t.Errorf("degenerate segment = %v, expected %v", got, a)
	}
}

func TestVec3(t *testing.T) {
	v := V3(3, 4, 0)
	if !near(v.Len(), 5) {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}

	n := v.Normalize()
	if !near(n.Len(), 1) {
		t.Errorf("Normalize().Len() = %f, expected 1", n.Len())
	}

	if !(Vec3{}).Normalize().IsZero() {
		t.Error("normalizing the zero vector should stay zero")
	}

	if f := V3(1, 2, 3).Flat(); f != V3(1, 0, 3) {
		t.Errorf("Flat() = %v", f)
	}

	h := Heading(math.Pi / 2)
	if !near(h.X, 0) || !near(h.Z, 1) {
		t.Errorf("Heading(pi/2) = %v, expected +Z", h)
	}

	if d := V3(0, 5, 0).DistXZ(V3(3, -1, 4)); !near(d, 5) {
		t.Errorf("DistXZ ignores height, got %f", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF did not clamp into [0, 1]")
	}
}
