package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minigolf/internal/audio"
	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

// defaultMaxFrame caps the time one tick may simulate.
const defaultMaxFrame = 50 * time.Millisecond

// Services are what a running game reports to. Every field is optional.
type Services struct {
	Store  *storage.Store
	Sounds audio.Player
	Logger *log.Logger

	// MaxFrame caps the elapsed time handed to one Step.
	MaxFrame time.Duration
}

func (s Services) withDefaults() Services {
	if s.Sounds == nil {
		s.Sounds = audio.Nop{}
	}
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	if s.MaxFrame <= 0 {
		s.MaxFrame = defaultMaxFrame
	}
	return s
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	loop       uint64
	standalone bool // quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc.withDefaults(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoopID(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in play
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize follows the terminal size, keeping progress when the game allows it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	m.inputFrame.Elapsed = frameElapsed(m.lastTick, now, m.config.TickRate, m.svc.MaxFrame)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// handleEvents plays sounds and saves results. Failures are logged and
// never interrupt play.
func (m Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventStroke:
			if ev.Strokes > 0 {
				m.svc.Sounds.Play(audio.SoundStroke)
			}

		case core.EventSinkSound:
			m.svc.Sounds.Play(audio.SoundSink)

		case core.EventHoleSunk:
			m.svc.Logger.Debug("hole sunk", "course", ev.Course, "hole", ev.Hole, "strokes", ev.Strokes, "par", ev.Par)
			if m.svc.Store == nil {
				continue
			}
			if _, err := m.svc.Store.SaveHole(storage.HoleResult{
				CourseID: ev.Course,
				Hole:     ev.Hole,
				Par:      ev.Par,
				Strokes:  ev.Strokes,
			}); err != nil {
				m.svc.Logger.Warn("could not save hole", "error", err)
			}

		case core.EventRoundOver:
			m.svc.Sounds.Play(audio.SoundRoundOver)
			m.svc.Logger.Info("round complete", "course", ev.Course, "strokes", ev.Strokes, "par", ev.Par)
			if m.svc.Store == nil {
				continue
			}
			if _, err := m.svc.Store.SaveRound(storage.Round{
				GameID:   m.game.ID(),
				CourseID: ev.Course,
				Strokes:  ev.Strokes,
				Par:      ev.Par,
			}); err != nil {
				m.svc.Logger.Warn("could not save round", "error", err)
			}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the user quits.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewModel(game, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drag to aim
	)

	_, err := p.Run()
	return err
}
