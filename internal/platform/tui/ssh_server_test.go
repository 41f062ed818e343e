package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		session, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = session
	}
	return m
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	svc := Services{Logger: log.New(io.Discard)}
	m := NewSessionModel(svc, menuCourse(), nil, testConfig())

	m = sendSession(t, m, keyTab)
	if m.current != screenScores {
		t.Fatalf("current = %v, want scoreboard", m.current)
	}
	if m.View() == "" {
		t.Error("scoreboard should render")
	}

	m = sendSession(t, m, keyEsc)
	if m.current != screenMenu {
		t.Errorf("current = %v, want menu", m.current)
	}
	if m.scores != nil {
		t.Error("scoreboard should be dropped")
	}
}

func TestSessionStartsGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	svc := Services{Logger: log.New(io.Discard)}
	m := NewSessionModel(svc, menuCourse(), nil, testConfig())

	m = sendSession(t, m, keyEnter)
	if m.current != screenGame || m.game == nil {
		t.Fatalf("current = %v, want game", m.current)
	}

	// Back is ignored while the ball is in play
	m = sendSession(t, m, keyEsc)
	if m.current != screenGame {
		t.Error("back during play should keep the game")
	}
}

func TestSessionWindowSizeFollowsTerminal(t *testing.T) {
	m := NewSessionModel(Services{}, menuCourse(), nil, testConfig())
	m = sendSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d", m.config.ScreenW, m.config.ScreenH)
	}
}
