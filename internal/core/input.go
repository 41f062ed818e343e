package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionAimLeft          // A, Left arrow - rotate aim counter-clockwise
	ActionAimRight         // D, Right arrow - rotate aim clockwise
	ActionPowerUp          // W, Up arrow - increase shot power
	ActionPowerDown        // S, Down arrow - decrease shot power
	ActionShoot            // Space - take the shot
	ActionConfirm          // Enter - next hole / confirm selection
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - return ball to the tee
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionPreview          // T - toggle trajectory preview
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionPowerUp:
		return "PowerUp"
	case ActionPowerDown:
		return "PowerDown"
	case ActionShoot:
		return "Shoot"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionPreview:
		return "Preview"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a mouse drag.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a mouse event in screen cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds mouse events received since the previous tick, in order.
	Pointer []PointerEvent

	// Elapsed is the wall-clock time since the previous tick.
	// Zero means the game should assume one fixed tick.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer queues a mouse event for this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	clone.Elapsed = f.Elapsed
	return clone
}
