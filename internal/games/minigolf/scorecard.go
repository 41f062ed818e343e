package minigolf

import (
	"fmt"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// HoleResult is the outcome of one completed hole.
type HoleResult struct {
	Number  int
	Par     int
	Strokes int
}

// Diff returns strokes relative to par (negative is under par).
func (r HoleResult) Diff() int {
	return r.Strokes - r.Par
}

// ParStatus describes strokes against par for the HUD.
func ParStatus(strokes, par int) (string, core.Color) {
	switch {
	case strokes <= 0:
		return "Ready to play", core.ColorBrightBlue
	case strokes == 1 && par > 1:
		return "Hole-in-One!", core.ColorBrightYellow
	case strokes < par:
		return fmt.Sprintf("%d Under Par", par-strokes), core.ColorBrightGreen
	case strokes == par:
		return "On Par", core.ColorBrightBlue
	default:
		return fmt.Sprintf("%d Over Par", strokes-par), core.ColorBrightRed
	}
}

// FormatDiff renders a score relative to par the way golfers write it.
func FormatDiff(diff int) string {
	switch {
	case diff == 0:
		return "E"
	case diff > 0:
		return fmt.Sprintf("+%d", diff)
	default:
		return fmt.Sprintf("%d", diff)
	}
}

// SessionStats accumulates results over every hole played in a session.
type SessionStats struct {
	HolesCompleted int
	TotalStrokes   int
	UnderPar       int
	HolesInOne     int
	CurrentStreak  int // consecutive holes under par
	BestStreak     int
}

// Record adds a completed hole.
func (s *SessionStats) Record(r HoleResult) {
	s.HolesCompleted++
	s.TotalStrokes += r.Strokes

	if r.Strokes == 1 {
		s.HolesInOne++
	}

	if r.Strokes < r.Par {
		s.UnderPar++
		s.CurrentStreak++
		if s.CurrentStreak > s.BestStreak {
			s.BestStreak = s.CurrentStreak
		}
	} else {
		s.CurrentStreak = 0
	}
}

// Scorecard keeps the results of the current round.
type Scorecard struct {
	Results []HoleResult
	Stats   SessionStats
}

// Record adds a hole to the card and the session stats.
func (c *Scorecard) Record(number, par, strokes int) HoleResult {
	r := HoleResult{Number: number, Par: par, Strokes: strokes}
	c.Results = append(c.Results, r)
	c.Stats.Record(r)
	return r
}

// NewRound clears the card but keeps session stats.
func (c *Scorecard) NewRound() {
	c.Results = c.Results[:0]
}

// Strokes returns the round total.
func (c *Scorecard) Strokes() int {
	total := 0
	for _, r := range c.Results {
		total += r.Strokes
	}
	return total
}

// Par returns the par of the holes played so far.
func (c *Scorecard) Par() int {
	total := 0
	for _, r := range c.Results {
		total += r.Par
	}
	return total
}

// Diff returns the round total relative to par.
func (c *Scorecard) Diff() int {
	return c.Strokes() - c.Par()
}
