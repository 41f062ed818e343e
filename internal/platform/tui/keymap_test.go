package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"a aims left", runeKey("a"), core.ActionAimLeft, false},
		{"left aims left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft, false},
		{"d aims right", runeKey("d"), core.ActionAimRight, false},
		{"up adds power", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPowerUp, false},
		{"s removes power", runeKey("s"), core.ActionPowerDown, false},
		{"space shoots", runeKey(" "), core.ActionShoot, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"t toggles preview", runeKey("t"), core.ActionPreview, false},
		{"unbound key", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("x"), &frame) {
		t.Error("unbound key should not quit")
	}
	if len(frame.Actions) != 0 {
		t.Errorf("unbound key set %d actions", len(frame.Actions))
	}

	km.MapKeyToFrame(runeKey(" "), &frame)
	if !frame.Has(core.ActionShoot) {
		t.Error("space should set Shoot")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerPress, true},
		{"left drag", tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerMotion, true},
		{"release", tea.MouseMsg{X: 6, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.PointerRelease, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"hover", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 0, false},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", ev.Kind, tt.kind)
			}
			if ev.X != tt.msg.X || ev.Y != tt.msg.Y {
				t.Errorf("position = (%d,%d), want (%d,%d)", ev.X, ev.Y, tt.msg.X, tt.msg.Y)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey(" "), MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
