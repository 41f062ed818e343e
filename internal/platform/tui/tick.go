// Package tui runs minigolf in a terminal with Bubble Tea, locally or over SSH.
// It maps keys and mouse drags to game input, paces the simulation and
// turns game events into sounds and saved scores.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the model that scheduled it, so a tick left over from a
// finished game never drives the next one.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoopID returns a process-wide unique tick loop ID.
func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// frameElapsed returns the wall time between two ticks for the physics step.
// The first tick and clock jumps fall back to one nominal interval; long
// stalls are capped so the ball never jumps across the green.
func frameElapsed(prev, now time.Time, tickRate int, limit time.Duration) time.Duration {
	nominal := time.Second / time.Duration(tickRate)
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	dt := now.Sub(prev)
	if limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}
