package course

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/physics"
)

const testdataDir = "testdata/courses"

func TestClassicCourse(t *testing.T) {
	c := Classic()

	if c.ID != ClassicID {
		t.Errorf("ID = %q, expected %q", c.ID, ClassicID)
	}
	if len(c.Holes) != 5 {
		t.Fatalf("expected 5 holes, got %d", len(c.Holes))
	}
	if c.Par() != 17 {
		t.Errorf("Par() = %d, expected 17", c.Par())
	}

	first := c.Holes[0]
	if first.Start != core.V3(0, 0.12, 0) {
		t.Errorf("hole 1 start = %v", first.Start)
	}
	if first.Cup.Position != core.V3(6, 0, 0) || first.Cup.Radius != 0.25 {
		t.Errorf("hole 1 cup = %+v", first.Cup)
	}
	if len(first.Walls) != 2 || first.Walls[0].Height != 0 {
		t.Errorf("hole 1 walls = %+v", first.Walls)
	}

	for i, h := range c.Holes {
		if h.Number != i+1 {
			t.Errorf("hole %d has number %d", i+1, h.Number)
		}
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	data := []byte(`
id: tiny
holes:
  - par: 1
    start: [1, 2]
    cup: { pos: [3, 0.5, 4] }
`)
	c, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}

	if c.Name != "tiny" {
		t.Errorf("Name = %q, expected ID fallback", c.Name)
	}
	h := c.Holes[0]
	if h.Number != 1 {
		t.Errorf("Number = %d, expected 1", h.Number)
	}
	if h.Start != core.V3(1, 0, 2) {
		t.Errorf("Start = %v, expected (1, 0, 2)", h.Start)
	}
	if h.Cup.Position != core.V3(3, 0, 4) {
		t.Errorf("cup position = %v, expected flattened (3, 0, 4)", h.Cup.Position)
	}
	if h.Cup.Radius != DefaultCupRadius {
		t.Errorf("cup radius = %f, expected default", h.Cup.Radius)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "holes: [oops"},
		{"short start", "id: x\nholes:\n  - par: 1\n    start: [1]\n    cup: { pos: [0, 0] }\n"},
		{"long cup", "id: x\nholes:\n  - par: 1\n    start: [1, 1]\n    cup: { pos: [0, 0, 0, 0] }\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Course {
		return Course{
			ID: "ok",
			Holes: []Hole{{
				Number: 1,
				Par:    2,
				Start:  core.V3(0, 0, 0),
				Cup:    physics.Hole{Position: core.V3(4, 0, 0), Radius: 0.25},
				Walls:  []physics.WallSpec{{X: 2, Z: 2, Width: 4, Depth: 0.2}},
			}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Course)
		code   string
	}{
		{"valid", func(*Course) {}, ""},
		{"missing id", func(c *Course) { c.ID = "" }, "MISSING_ID"},
		{"no holes", func(c *Course) { c.Holes = nil }, "NO_HOLES"},
		{"zero par", func(c *Course) { c.Holes[0].Par = 0 }, "INVALID_PAR"},
		{"negative cup", func(c *Course) { c.Holes[0].Cup.Radius = -1 }, "INVALID_CUP"},
		{"flat wall", func(c *Course) { c.Holes[0].Walls[0].Depth = 0 }, "INVALID_WALL"},
		{"tee in wall", func(c *Course) { c.Holes[0].Start = core.V3(2, 0, 2) }, "START_IN_WALL"},
		{"cup in wall", func(c *Course) { c.Holes[0].Cup.Position = core.V3(1, 0, 2) }, "CUP_IN_WALL"},
		{"duplicate hole", func(c *Course) { c.Holes = append(c.Holes, c.Holes[0]) }, "DUPLICATE_HOLE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := Validate(c)

			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}

			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if ve.Code != tc.code {
				t.Errorf("Code = %s, expected %s", ve.Code, tc.code)
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataDir)

	courses, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// Built-in classic plus the valid alley file; broken and garbage are skipped.
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	if len(ids) != 2 || ids[0] != "alley" || ids[1] != ClassicID {
		t.Errorf("course IDs = %v, expected [alley classic]", ids)
	}
}

func TestLoaderBuiltinOnly(t *testing.T) {
	ids, err := NewLoader("").ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != ClassicID {
		t.Errorf("ListIDs() = %v, expected [classic]", ids)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(testdataDir)

	c, err := loader.LoadByID("alley")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if c.Name != "Back Alley" || len(c.Holes) != 2 {
		t.Errorf("unexpected course: %+v", c)
	}
	if c.FilePath == "" {
		t.Error("file course should record its path")
	}
	if c.Holes[0].Walls[2].Height != 0.3 {
		t.Errorf("wall height = %f, expected 0.3", c.Holes[0].Walls[2].Height)
	}

	if _, err := loader.LoadByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID(nope) = %v, expected ErrNotFound", err)
	}
}

func TestLoaderLoadFileReportsValidation(t *testing.T) {
	_, err := NewLoader("").LoadFile(filepath.Join(testdataDir, "broken.yaml"))

	var ve ValidationError
	if !errors.As(err, &ve) || ve.Code != "START_IN_WALL" {
		t.Errorf("LoadFile() = %v, expected START_IN_WALL", err)
	}
}

func TestLoaderFileOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	data := []byte("id: classic\nname: My Classic\nholes:\n  - par: 3\n    start: [0, 0]\n    cup: { pos: [2, 0] }\n")
	if err := os.WriteFile(filepath.Join(dir, "classic.yml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := NewLoader(dir).LoadByID(ClassicID)
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if c.Name != "My Classic" || len(c.Holes) != 1 {
		t.Errorf("expected file course to replace built-in, got %+v", c)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestHoleBounds(t *testing.T) {
	h := Classic().Holes[0]
	b := h.Bounds()

	if b.Min.X != -6 || b.Max.X != 6.25 {
		t.Errorf("X bounds = [%f, %f], expected [-6, 6.25]", b.Min.X, b.Max.X)
	}
	if b.Min.Z != -2.7 || b.Max.Z != 2.7 {
		t.Errorf("Z bounds = [%f, %f], expected [-2.7, 2.7]", b.Min.Z, b.Max.Z)
	}
}
