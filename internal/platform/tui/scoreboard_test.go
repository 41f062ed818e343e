package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf/course"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

func pressScores(t *testing.T, m ScoreboardModel, msgs ...tea.Msg) ScoreboardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		scores, ok := next.(ScoreboardModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = scores
	}
	return m
}

func TestScoreboardCoursesAndViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close() //nolint:errcheck

	c := menuCourse()
	for _, strokes := range []int{12, 9} {
		if _, err := store.SaveRound(storage.Round{GameID: "minigolf", CourseID: c.ID, Strokes: strokes, Par: 9}); err != nil {
			t.Fatalf("SaveRound() error = %v", err)
		}
	}
	if _, err := store.SaveHole(storage.HoleResult{CourseID: "lost_course", Hole: 1, Par: 2, Strokes: 1}); err != nil {
		t.Fatalf("SaveHole() error = %v", err)
	}

	m := NewScoreboardModel(store, []course.Course{c}, 100, 30)

	if len(m.courses) != 2 {
		t.Fatalf("courses = %+v, want known plus database-only", m.courses)
	}
	if m.courses[1].ID != "lost_course" {
		t.Errorf("second course = %q", m.courses[1].ID)
	}

	if len(m.rounds) != 2 || m.rounds[0].Strokes != 9 {
		t.Errorf("rounds = %+v, want best first", m.rounds)
	}
	if !strings.Contains(m.View(), "BEST ROUNDS - Menu Test") {
		t.Errorf("view title missing:\n%s", m.View())
	}

	m = pressScores(t, m, runeKey("v"))
	if m.view != viewHoles {
		t.Error("v should switch to hole bests")
	}

	m = pressScores(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.courses[m.cursor].ID != "lost_course" {
		t.Errorf("tab selected %q", m.courses[m.cursor].ID)
	}
	if len(m.holes) != 1 || m.holes[0].Best != 1 {
		t.Errorf("holes = %+v", m.holes)
	}

	// Wraps around
	m = pressScores(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m = pressScores(t, m, runeKey("b"))
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back without quitting")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, nil, 60, 20)
	if m.View() == "" {
		t.Error("empty scoreboard should still render")
	}
	m = pressScores(t, m, tea.KeyMsg{Type: tea.KeyTab}, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
