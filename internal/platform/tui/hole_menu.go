package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf/course"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

// HoleSelectModel lists the holes of a course with par and personal best.
// It is driven by MenuModel and has no program of its own.
type HoleSelectModel struct {
	course course.Course
	bests  map[int]int // hole number -> fewest strokes
	cursor int
	chosen int // 1-based hole, 0 while choosing
	back   bool
}

// NewHoleSelectModel loads personal bests from store when available.
func NewHoleSelectModel(c course.Course, store *storage.Store) HoleSelectModel {
	m := HoleSelectModel{course: c, bests: make(map[int]int)}
	if store == nil {
		return m
	}
	bests, err := store.HoleBests(c.ID)
	if err != nil {
		return m
	}
	for _, b := range bests {
		m.bests[b.Hole] = b.Best
	}
	return m
}

// Handle applies a menu action.
func (m HoleSelectModel) Handle(action MenuAction) HoleSelectModel {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.course.Holes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.course.Holes) > 0 {
			m.chosen = m.cursor + 1
		}
	case MenuActionBack:
		m.back = true
	}
	return m
}

// View renders the hole list.
func (m HoleSelectModel) View(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT HOLE - "+m.course.Name, width))
	b.WriteString("\n\n")

	for i, h := range m.course.Holes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := "  -"
		if s, ok := m.bests[h.Number]; ok {
			best = fmt.Sprintf("%3d", s)
		}

		line := fmt.Sprintf("%sHole %2d   Par %d   Best %s", cursor, h.Number, h.Par, best)
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", width))

	return b.String()
}

// Chosen returns the selected 1-based hole, or 0 while still choosing.
func (m HoleSelectModel) Chosen() int {
	return m.chosen
}

// WantsBack returns true if user pressed back.
func (m HoleSelectModel) WantsBack() bool {
	return m.back
}
