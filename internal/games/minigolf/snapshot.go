package minigolf

import "math"

// Snapshot contains the game state needed to compare two runs.
// Positions are stored in millimeters for stable comparison.
type Snapshot struct {
	Tick      uint64
	HoleIndex int
	Strokes   int
	Total     int
	Captured  bool
	State     string
	BallX     int
	BallZ     int
	VelX      int // mm/s
	VelZ      int // mm/s
	AimAngle  int // milliradians
	AimPower  int // thousandths
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.engine.Position()
	vel := g.engine.Velocity()
	return Snapshot{
		Tick:      g.tick,
		HoleIndex: g.holeIndex,
		Strokes:   g.engine.Strokes(),
		Total:     g.card.Strokes(),
		Captured:  g.engine.Captured(),
		State:     g.state,
		BallX:     milli(pos.X),
		BallZ:     milli(pos.Z),
		VelX:      milli(vel.X),
		VelZ:      milli(vel.Z),
		AimAngle:  milli(g.aim.Angle),
		AimPower:  milli(g.aim.Power),
	}
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.HoleIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Strokes)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Total)     //#nosec G115 -- hash computation
	if snap.Captured {
		h = h*31 + 1
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.BallX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallZ)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.VelX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.VelZ)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AimAngle) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AimPower) //#nosec G115 -- hash computation
	return h
}
