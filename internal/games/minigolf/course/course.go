// Package course loads minigolf course definitions.
// A course is an ordered list of holes; each hole has a tee, a cup and a
// set of axis-aligned walls.
package course

import (
	"fmt"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/physics"
	"gopkg.in/yaml.v3"
)

// DefaultCupRadius is used when a hole leaves the cup radius unset.
const DefaultCupRadius = 0.25

// Course is a parsed course ready for play.
type Course struct {
	ID       string
	Name     string
	Holes    []Hole
	FilePath string // empty for built-in courses
}

// Hole is a single hole of a course.
type Hole struct {
	Number int
	Par    int
	Start  core.Vec3
	Cup    physics.Hole
	Walls  []physics.WallSpec
}

// Par returns the sum of every hole's par.
func (c *Course) Par() int {
	total := 0
	for _, h := range c.Holes {
		total += h.Par
	}
	return total
}

// Hole returns the hole at index i (0-based).
func (c *Course) Hole(i int) (Hole, bool) {
	if i < 0 || i >= len(c.Holes) {
		return Hole{}, false
	}
	return c.Holes[i], true
}

// Bounds returns the box enclosing every wall, the tee and the cup.
func (h Hole) Bounds() core.Box {
	b := core.Box{Min: h.Start.Flat(), Max: h.Start.Flat()}
	cup := h.Cup.Position.Flat()
	r := core.V3(h.Cup.Radius, 0, h.Cup.Radius)
	b = b.Union(core.Box{Min: cup.Sub(r), Max: cup.Add(r)})
	for _, w := range h.Walls {
		b = b.Union(w.Box(0))
	}
	return b
}

// YAMLCourse is the on-disk layout of a course file.
type YAMLCourse struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Holes []YAMLHole `yaml:"holes"`
}

// YAMLHole is one hole in a course file.
type YAMLHole struct {
	Number int        `yaml:"number,omitempty"`
	Par    int        `yaml:"par"`
	Start  []float64  `yaml:"start"` // [x, z] or [x, y, z]
	Cup    YAMLCup    `yaml:"cup"`
	Walls  []YAMLWall `yaml:"walls,omitempty"`
}

// YAMLCup is the cup of a hole.
type YAMLCup struct {
	Pos    []float64 `yaml:"pos"`
	Radius float64   `yaml:"radius,omitempty"`
}

// YAMLWall is a wall; w runs along X and d along Z.
type YAMLWall struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
	D float64 `yaml:"d"`
	H float64 `yaml:"h,omitempty"`
}

// ParseYAML parses a course file. The result is not validated.
func ParseYAML(data []byte) (Course, error) {
	var yc YAMLCourse
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Course{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	c := Course{
		ID:    yc.ID,
		Name:  yc.Name,
		Holes: make([]Hole, 0, len(yc.Holes)),
	}
	if c.Name == "" {
		c.Name = c.ID
	}

	for i, yh := range yc.Holes {
		start, err := parsePoint(yh.Start)
		if err != nil {
			return Course{}, fmt.Errorf("hole %d start: %w", i+1, err)
		}
		cup, err := parsePoint(yh.Cup.Pos)
		if err != nil {
			return Course{}, fmt.Errorf("hole %d cup: %w", i+1, err)
		}

		h := Hole{
			Number: yh.Number,
			Par:    yh.Par,
			Start:  start,
			Cup:    physics.Hole{Position: cup.Flat(), Radius: yh.Cup.Radius},
			Walls:  make([]physics.WallSpec, len(yh.Walls)),
		}
		if h.Number == 0 {
			h.Number = i + 1
		}
		if h.Cup.Radius == 0 {
			h.Cup.Radius = DefaultCupRadius
		}
		for j, w := range yh.Walls {
			h.Walls[j] = physics.WallSpec{X: w.X, Z: w.Z, Width: w.W, Depth: w.D, Height: w.H}
		}
		c.Holes = append(c.Holes, h)
	}

	return c, nil
}

// parsePoint accepts [x, z] or [x, y, z].
func parsePoint(v []float64) (core.Vec3, error) {
	switch len(v) {
	case 2:
		return core.V3(v[0], 0, v[1]), nil
	case 3:
		return core.V3(v[0], v[1], v[2]), nil
	default:
		return core.Vec3{}, fmt.Errorf("expected [x, z] or [x, y, z], got %d values", len(v))
	}
}
