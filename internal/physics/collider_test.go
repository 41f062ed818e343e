package physics

import (
	"testing"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

func TestWallSpecBox(t *testing.T) {
	tests := []struct {
		name     string
		wall     WallSpec
		groundY  float64
		expected core.Box
	}{
		{
			name:     "default height",
			wall:     WallSpec{X: 0, Z: -2.5, Width: 12, Depth: 0.4},
			expected: core.Box{Min: core.V3(-6, 0, -2.7), Max: core.V3(6, 0.5, -2.3)},
		},
		{
			name:     "explicit height on raised ground",
			wall:     WallSpec{X: 1, Z: 1, Width: 2, Depth: 2, Height: 1},
			groundY:  0.5,
			expected: core.Box{Min: core.V3(0, 0.5, 0), Max: core.V3(2, 1.5, 2)},
		},
		{
			name:     "negative sizes are mirrored",
			wall:     WallSpec{X: 0, Z: 0, Width: -2, Depth: -4},
			expected: core.Box{Min: core.V3(-1, 0, -2), Max: core.V3(1, 0.5, 2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.wall.Box(tc.groundY)
			if !boxNear(got, tc.expected) {
				t.Errorf("Box() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestSetCollidersReplacesWalls(t *testing.T) {
	e, _, _ := newTestEngine(t, func(o *Options) {
		o.Walls = []WallSpec{{X: 1, Width: 1, Depth: 1}, {X: 2, Width: 1, Depth: 1}}
	})
	if n := len(e.Colliders()); n != 2 {
		t.Fatalf("Colliders() has %d boxes, expected 2", n)
	}

	e.SetColliders([]WallSpec{{X: -3, Z: 4, Width: 2, Depth: 2}})

	boxes := e.Colliders()
	if len(boxes) != 1 {
		t.Fatalf("Colliders() has %d boxes, expected 1", len(boxes))
	}
	if c := boxes[0].Min.Add(boxes[0].Max).Scale(0.5); !near(c.X, -3) || !near(c.Z, 4) {
		t.Errorf("collider center = %v, expected (-3, _, 4)", c)
	}
	if w := e.Walls(); len(w) != 1 || w[0].X != -3 {
		t.Errorf("Walls() = %+v", w)
	}
}

func TestWallsBlockAtAnyHeight(t *testing.T) {
	tests := []struct {
		name   string
		height float64
	}{
		{name: "below ball center", height: 0.05},
		{name: "at ball center", height: 0.12},
		{name: "tall", height: 2},
		{name: "default", height: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t, func(o *Options) {
				o.Friction = 0.5
				o.Walls = []WallSpec{{X: 1, Width: 0.2, Depth: 2, Height: tc.height}}
			})
			e.ApplyShot(core.V3(1, 0, 0), 3)

			for i := 0; i < 120; i++ {
				e.Update(1.0 / 60)
				p, v := e.Position(), e.Velocity()
				if !near(p.Y, 0.12) || v.Y != 0 {
					t.Fatalf("update %d left the ground: position %v, velocity %v", i, p, v)
				}
				if p.X > 0.9-0.12+1e-3 {
					t.Fatalf("update %d passed the wall face: position %v", i, p)
				}
			}
			if v := e.Velocity(); v.X >= 0 {
				t.Errorf("velocity = %v, expected the ball to bounce back", v)
			}
		})
	}
}

func TestGlancingHitKeepsTangentialSpeed(t *testing.T) {
	e, _, _ := newTestEngine(t, func(o *Options) {
		o.Friction = 0
		o.Walls = []WallSpec{{X: 0.6, Z: 0, Width: 0.2, Depth: 20}}
	})
	e.ApplyShot(core.V3(1, 0, 1), 2)
	vz := e.Velocity().Z

	for i := 0; i < 240 && e.Velocity().X > 0; i++ {
		e.Update(MaxSubstep)
	}

	v := e.Velocity()
	if v.X >= 0 {
		t.Fatalf("ball never hit the wall, velocity = %v", v)
	}
	if !near(v.Z, vz*0.95) {
		t.Errorf("tangential speed = %f, expected %f", v.Z, vz*0.95)
	}
}

func boxNear(a, b core.Box) bool {
	return near(a.Min.X, b.Min.X) && near(a.Min.Y, b.Min.Y) && near(a.Min.Z, b.Min.Z) &&
		near(a.Max.X, b.Max.X) && near(a.Max.Y, b.Max.Y) && near(a.Max.Z, b.Max.Z)
}
