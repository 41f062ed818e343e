package course

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// ClassicID is the built-in course every installation has.
const ClassicID = "classic"

//go:embed courses/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned by LoadByID for unknown course IDs.
var ErrNotFound = errors.New("course not found")

// Loader loads the built-in courses plus any course files under Root.
// A file course replaces a built-in course with the same ID.
type Loader struct {
	Root string // empty means built-in courses only
}

// NewLoader creates a new course loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Builtin returns the courses compiled into the binary.
func Builtin() ([]Course, error) {
	entries, err := fs.ReadDir(builtinFS, "courses")
	if err != nil {
		return nil, fmt.Errorf("course: reading built-in courses: %w", err)
	}

	courses := make([]Course, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("courses", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("course: reading %s: %w", e.Name(), err)
		}
		c, err := parseAndValidate(data)
		if err != nil {
			return nil, fmt.Errorf("course: built-in %s: %w", e.Name(), err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// LoadAll returns every course sorted by ID.
// Invalid files under Root are skipped.
func (l *Loader) LoadAll() ([]Course, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Course, len(builtin))
	for _, c := range builtin {
		byID[c.ID] = c
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
				return nil
			}

			c, err := l.LoadFile(p)
			if err != nil {
				// Skip invalid files
				return nil
			}
			byID[c.ID] = c
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("course: walking directory %s: %w", l.Root, err)
		}
	}

	courses := make([]Course, 0, len(byID))
	for _, c := range byID {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].ID < courses[j].ID
	})
	return courses, nil
}

// LoadFile loads and validates a single course file.
func (l *Loader) LoadFile(p string) (Course, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Course{}, fmt.Errorf("course: reading file %s: %w", p, err)
	}

	c, err := parseAndValidate(data)
	if err != nil {
		return Course{}, fmt.Errorf("course: %s: %w", p, err)
	}
	c.FilePath = p
	return c, nil
}

// LoadByID loads a specific course by ID.
func (l *Loader) LoadByID(id string) (Course, error) {
	courses, err := l.LoadAll()
	if err != nil {
		return Course{}, err
	}

	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}

	return Course{}, fmt.Errorf("course: %w: %s", ErrNotFound, id)
}

// ListIDs returns all course IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	courses, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids, nil
}

// Classic returns the built-in classic course.
func Classic() Course {
	courses, err := Builtin()
	if err != nil {
		panic(err) // embedded data is checked by tests
	}
	for _, c := range courses {
		if c.ID == ClassicID {
			return c
		}
	}
	panic("course: classic course missing from build")
}

func parseAndValidate(data []byte) (Course, error) {
	c, err := ParseYAML(data)
	if err != nil {
		return Course{}, err
	}
	if err := Validate(c); err != nil {
		return Course{}, err
	}
	return c, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
