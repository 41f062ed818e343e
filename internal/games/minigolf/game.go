// Package minigolf implements terminal minigolf on top of the physics engine.
// Holes come from the course package; the platform supplies key, mouse and
// frame timing input and receives stroke and hole events back.
package minigolf

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-minigolf/internal/config"
	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf/course"
	"github.com/vovakirdan/tui-minigolf/internal/physics"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
)

// Visual characters for rendering
const (
	BallChar    = '●'
	CupChar     = 'O'
	TeeChar     = 'x'
	WallChar    = '█'
	GreenChar   = '·'
	AimChar     = '•'
	AimTipChar  = '+'
	PreviewChar = '∘'
)

// Game states
const (
	StateAiming    = "aiming"    // Ball at rest, waiting for a shot
	StateRolling   = "rolling"   // Ball in motion
	StateSunk      = "sunk"      // Ball in the cup, waiting for Confirm
	StatePaused    = "paused"    // Game paused
	StateRoundOver = "roundover" // Last hole of a round completed
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeRound    GameMode = iota // Play every hole once, round over after the last
	ModePractice                 // Cycle through the holes forever
)

const (
	minScreenW = 40
	minScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// courseDir and courseID select the course set via CLI
var (
	courseDir string
	courseID  = course.ClassicID
)

// selectedStartHole is the 1-based hole the next Reset starts on (0 = first).
var selectedStartHole int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetCourse selects the course directory and course ID.
func SetCourse(dir, id string) {
	courseDir = dir
	if id == "" {
		id = course.ClassicID
	}
	courseID = id
}

// SetStartHole sets the starting hole (1-based). 0 means start from the first hole.
func SetStartHole(hole int) {
	selectedStartHole = hole
}

// GetStartHole returns the currently selected start hole.
func GetStartHole() int {
	return selectedStartHole
}

// Game implements the minigolf game logic.
type Game struct {
	mode GameMode

	course    course.Course
	fixed     bool // course supplied by the caller, not loaded on Reset
	holeIndex int
	startHole int // 1-based hole Reset starts on, 0 = first

	engine *physics.Engine
	aim    Aim
	card   Scorecard

	state       string
	pausedFrom  string
	showPreview bool
	preview     []core.Vec3
	notice      string // one-line message under the HUD

	// simTime drives the engine clock so a run depends only on its inputs.
	simTime time.Time
	tick    uint64
	events  []core.Event

	runtime    core.RuntimeConfig
	cfg        config.GolfConfig
	difficulty *config.DifficultyManager
	view       Viewport

	screenTooSmall bool
}

// New creates a new minigolf game that plays one round.
func New() *Game {
	return &Game{mode: ModeRound}
}

// NewPractice creates a new minigolf game that cycles holes forever.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// NewWithCourse creates a game that always plays the given course.
func NewWithCourse(mode GameMode, c course.Course) *Game {
	return &Game{mode: mode, course: c, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "minigolf_practice"
	}
	return "minigolf"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Minigolf (Practice)"
	}
	return "Minigolf"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	// Load game config
	cfg, err := config.LoadGolf(configPath)
	if err != nil {
		cfg = config.DefaultGolfConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyGolfPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.notice = ""
	if !g.fixed {
		g.course = g.loadCourse()
	}

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.card = Scorecard{}
	g.simTime = time.Unix(0, 0)
	g.tick = 0
	g.events = nil
	g.showPreview = false

	g.engine = physics.New(physics.Options{
		Radius:        cfg.Physics.BallRadius,
		Mass:          cfg.Physics.BallMass,
		GroundY:       cfg.Physics.GroundY,
		Friction:      cfg.Physics.Friction,
		Restitution:   cfg.Physics.Restitution,
		RestThreshold: cfg.Physics.RestThreshold,
		SinkSpeed:     cfg.Physics.SinkSpeed,
		StuckTimeout:  cfg.Physics.StuckTimeout,
		Clock:         func() time.Time { return g.simTime },
		Logger:        log.Default().WithPrefix("minigolf"),
	})
	g.engine.SetCallbacks(physics.Callbacks{
		OnStroke:    g.onStroke,
		OnHole:      g.onHole,
		OnStop:      g.onStop,
		OnSinkSound: g.onSinkSound,
	})

	want := g.startHole
	if want == 0 {
		want = selectedStartHole
		selectedStartHole = 0 // Reset after use
	}
	start := 0
	if want > 0 && want <= len(g.course.Holes) {
		start = want - 1
	}
	g.loadHole(start)
	g.events = nil // hole setup is not reported
}

// loadCourse loads the selected course, falling back to the built-in one.
func (g *Game) loadCourse() course.Course {
	c, err := course.NewLoader(courseDir).LoadByID(courseID)
	if err != nil {
		g.notice = fmt.Sprintf("course %q unavailable, playing %s", courseID, course.ClassicID)
		return course.Classic()
	}
	return c
}

// loadHole places the ball on the tee of the hole at index.
func (g *Game) loadHole(index int) {
	g.holeIndex = index
	hole := g.currentHole()

	holesDone := g.card.Stats.HolesCompleted
	g.engine.SetGreen(
		g.difficulty.Friction(g.cfg.Physics.Friction, holesDone),
		g.difficulty.SinkSpeed(g.cfg.Physics.SinkSpeed, holesDone),
	)
	g.engine.SetColliders(hole.Walls)
	g.engine.SetHole(hole.Cup.Position, hole.Cup.Radius)
	g.engine.Teleport(hole.Start)
	g.engine.ResetToStart()

	g.aim = NewAim(g.cfg.Aim)
	g.aim.Angle = initialAngle(hole)
	g.preview = nil
	g.state = StateAiming
	g.layout()
}

// initialAngle points the aim from the tee at the cup.
func initialAngle(h course.Hole) float64 {
	d := h.Cup.Position.Sub(h.Start)
	if d.Flat().IsZero() {
		return 0
	}
	return math.Atan2(d.Z, d.X)
}

// StartAt makes every Reset begin on the given 1-based hole.
// Out of range values start on the first hole.
func (g *Game) StartAt(hole int) {
	g.startHole = hole
}

// Resize follows a terminal resize without restarting the hole.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	g.screenTooSmall = width < minScreenW || height < minScreenH
	if g.engine != nil {
		g.layout()
	}
}

// layout fits the current hole into the screen below the HUD.
func (g *Game) layout() {
	area := core.NewRect(1, 2, g.runtime.ScreenW-2, g.runtime.ScreenH-3)
	g.view = FitViewport(g.currentHole().Bounds(), area)
}

func (g *Game) currentHole() course.Hole {
	h, _ := g.course.Hole(g.holeIndex)
	return h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	if g.screenTooSmall || len(g.course.Holes) == 0 {
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.pausedFrom
		case StateRoundOver:
		default:
			g.pausedFrom = g.state
			g.state = StatePaused
			g.aim.CancelDrag()
		}
	}

	// Don't update if paused
	if g.state == StatePaused {
		return g.result()
	}

	if g.state == StateRoundOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.newRound()
		}
		return g.result()
	}

	g.tick++

	if in.Has(core.ActionPreview) {
		g.showPreview = !g.showPreview
	}

	// R puts the ball back on the tee and clears the hole's strokes
	if in.Has(core.ActionRestart) && g.state != StateSunk {
		g.aim.CancelDrag()
		g.engine.ResetToStart()
	}

	if g.state == StateSunk {
		if in.Has(core.ActionConfirm) {
			g.advanceHole()
		}
		return g.result()
	}

	if !g.engine.Moving() {
		g.handleAim(in)
	}

	dt := g.frameDelta(in)
	g.simTime = g.simTime.Add(dt)
	g.engine.Update(dt.Seconds())

	g.syncState()
	return g.result()
}

// handleAim applies keyboard and mouse aiming and takes the shot.
func (g *Game) handleAim(in core.InputFrame) {
	if in.Has(core.ActionAimLeft) {
		g.aim.Rotate(-1)
	}
	if in.Has(core.ActionAimRight) {
		g.aim.Rotate(1)
	}
	if in.Has(core.ActionPowerUp) {
		g.aim.AdjustPower(1)
	}
	if in.Has(core.ActionPowerDown) {
		g.aim.AdjustPower(-1)
	}

	ball := g.engine.Position()
	for _, ev := range in.Pointer {
		target := g.view.ToWorld(ev.X, ev.Y)
		switch ev.Kind {
		case core.PointerPress:
			g.aim.BeginDrag()
			g.aim.Drag(ball, target)
		case core.PointerMotion:
			g.aim.Drag(ball, target)
		case core.PointerRelease:
			if dir, power, ok := g.aim.EndDrag(ball, target); ok {
				g.engine.ApplyShot(dir, power)
				return
			}
		}
	}

	if in.Has(core.ActionShoot) && !g.aim.Dragging() {
		g.engine.ApplyShot(g.aim.Direction(), g.aim.Power)
	}
}

// frameDelta returns the simulated time for this tick.
func (g *Game) frameDelta(in core.InputFrame) time.Duration {
	dt := in.Elapsed
	if dt <= 0 {
		dt = time.Second / time.Duration(g.runtime.TickRate)
	}
	if limit := g.cfg.Frame.MaxDelta; limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}

// syncState derives the game state from the engine after an update.
func (g *Game) syncState() {
	switch {
	case g.engine.Captured():
		if g.mode == ModeRound && g.holeIndex == len(g.course.Holes)-1 {
			g.state = StateRoundOver
			g.emit(core.Event{
				Type:    core.EventRoundOver,
				Course:  g.course.ID,
				Par:     g.card.Par(),
				Strokes: g.card.Strokes(),
			})
		} else {
			g.state = StateSunk
		}
		g.preview = nil
	case g.engine.Moving():
		g.state = StateRolling
		g.preview = nil
	default:
		g.state = StateAiming
		if g.showPreview {
			g.preview = g.engine.PredictPath(g.aim.Direction(), g.aim.Power, g.cfg.Aim.PreviewSeconds, 0.1)
		} else {
			g.preview = nil
		}
	}
}

// advanceHole moves to the next hole after a sink.
func (g *Game) advanceHole() {
	next := g.holeIndex + 1
	if next >= len(g.course.Holes) {
		next = 0
	}
	g.loadHole(next)
}

// newRound restarts the course from the first hole, keeping session stats.
func (g *Game) newRound() {
	g.card.NewRound()
	g.loadHole(0)
}

func (g *Game) onStroke(strokes int) {
	g.emit(core.Event{Type: core.EventStroke, Strokes: strokes})
}

func (g *Game) onStop() {
	g.emit(core.Event{Type: core.EventBallStop})
}

func (g *Game) onHole(strokes int) {
	hole := g.currentHole()
	g.card.Record(hole.Number, hole.Par, strokes)
	g.emit(core.Event{
		Type:    core.EventHoleSunk,
		Course:  g.course.ID,
		Hole:    hole.Number,
		Par:     hole.Par,
		Strokes: strokes,
	})
}

func (g *Game) onSinkSound() {
	g.emit(core.Event{Type: core.EventSinkSound})
}

func (g *Game) emit(ev core.Event) {
	if ev.Course == "" {
		ev.Course = g.course.ID
	}
	if ev.Hole == 0 {
		ev.Hole = g.currentHole().Number
	}
	g.events = append(g.events, ev)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
// Score is the round's strokes so far; lower is better.
func (g *Game) State() core.GameState {
	score := g.card.Strokes()
	if g.engine != nil && !g.engine.Captured() {
		score += g.engine.Strokes()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateRoundOver,
		Paused:   g.state == StatePaused,
	}
}

// Course returns the course being played.
func (g *Game) Course() course.Course { return g.course }

// HoleIndex returns the 0-based index of the current hole.
func (g *Game) HoleIndex() int { return g.holeIndex }

// Scorecard returns the round and session results.
func (g *Game) Scorecard() Scorecard { return g.card }

// Ball returns the ball position.
func (g *Game) Ball() core.Vec3 { return g.engine.Position() }

// Strokes returns the strokes taken on the current hole.
func (g *Game) Strokes() int { return g.engine.Strokes() }

// Aim returns the shot being lined up.
func (g *Game) Aim() Aim { return g.aim }

// Viewport returns the current world to screen mapping.
func (g *Game) Viewport() Viewport { return g.view }

// Register the games with the registry
func init() {
	registry.Register("minigolf", func() registry.Game {
		return New()
	})
	registry.Register("minigolf_practice", func() registry.Game {
		return NewPractice()
	})
}
