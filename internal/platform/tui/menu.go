package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf/course"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

// holeSelectID marks the menu entry that opens the hole list.
const holeSelectID = "select_hole"

// roundGameID is the mode started from the hole list.
const roundGameID = "minigolf"

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	course    course.Course
	bestRound string
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	holes     *HoleSelectModel // non-nil while the hole list is open
	startHole int

	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model for the given course.
func NewMenuModel(store *storage.Store, c course.Course, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	items = append(items, MenuItem{GameID: holeSelectID, Title: "Start at Hole..."})

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		course:    c,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if best, ok, err := store.BestRound(c.ID); err == nil && ok {
			m.bestRound = fmt.Sprintf("Best round %d (par %d)", best, c.Par())
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.holes != nil {
		holes := m.holes.Handle(action)
		switch {
		case holes.WantsBack():
			m.holes = nil
		case holes.Chosen() > 0:
			m.startHole = holes.Chosen()
			m.selected = &MenuItem{GameID: roundGameID, Title: m.course.Name}
			return m, tea.Quit
		default:
			m.holes = &holes
		}
		return m, nil
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		if selected.GameID == holeSelectID {
			holes := NewHoleSelectModel(m.course, m.store)
			m.holes = &holes
			return m, nil
		}
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.holes != nil {
		return m.holes.View(m.width)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  M I N I G O L F  ", m.width))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("%s  -  %d holes, par %d", m.course.Name, len(m.course.Holes), m.course.Par())
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n")
	if m.bestRound != "" {
		b.WriteString(centerText(m.bestRound, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// StartHole returns the 1-based hole chosen from the hole list, or 0.
func (m MenuModel) StartHole() int {
	return m.startHole
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	StartHole       int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, c course.Course, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, c, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// Result summarizes what the user chose.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.StartHole = m.StartHole()
	}
	return result
}
