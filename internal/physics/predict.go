package physics

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// PredictPath simulates a shot without touching the engine and returns the
// ball position every `every` seconds for up to `duration` seconds. The
// path ends early when the ball stops or drops into the cup.
func (e *Engine) PredictPath(direction core.Vec3, power, duration, every float64) []core.Vec3 {
	if !(duration > 0) || !(every > 0) || e.captured {
		return nil
	}

	frozen := e.opts.Clock()
	opts := e.opts
	opts.Callbacks = Callbacks{}
	opts.Clock = func() time.Time { return frozen }

	sim := &Engine{
		opts:       opts,
		pos:        e.pos,
		start:      e.start,
		walls:      e.walls,
		boxes:      e.boxes,
		hole:       e.hole,
		lastMoving: frozen,
	}
	sim.ApplyShot(direction, power)
	if !sim.Moving() {
		return nil
	}

	n := int(math.Ceil(duration / every))
	path := make([]core.Vec3, 0, n)
	for i := 0; i < n; i++ {
		sim.Update(every)
		path = append(path, sim.pos)
		if sim.captured || !sim.Moving() {
			break
		}
	}
	return path
}
