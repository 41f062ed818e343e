package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf/course"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show course list sidebar
	sidebarWidth       = 24  // Width of course list sidebar
	maxRounds          = 100 // Max rounds to load
)

// scoreView selects which table the scoreboard shows.
type scoreView int

const (
	viewRounds scoreView = iota
	viewHoles
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	Back       key.Binding
	Quit       key.Binding
	NextCourse key.Binding
	PrevCourse key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.NextCourse, k.PrevCourse, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.NextCourse, k.PrevCourse},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev course"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next course"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "rounds/holes"),
		),
		NextCourse: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next course"),
		),
		PrevCourse: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev course"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// courseEntry is one course in the sidebar.
type courseEntry struct {
	ID   string
	Name string
}

// ScoreboardModel shows best rounds and per-hole bests for each course.
type ScoreboardModel struct {
	courses     []courseEntry
	cursor      int
	store       *storage.Store
	view        scoreView
	rounds      []storage.Round
	holes       []storage.HoleBest
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show course list sidebar
}

// NewScoreboardModel creates a scoreboard for the known courses plus any
// course that only exists in the database.
func NewScoreboardModel(store *storage.Store, known []course.Course, width, height int) ScoreboardModel {
	courses := make([]courseEntry, 0, len(known))
	seen := make(map[string]bool)
	for _, c := range known {
		courses = append(courses, courseEntry{ID: c.ID, Name: c.Name})
		seen[c.ID] = true
	}
	if store != nil {
		if ids, err := store.CourseIDs(); err == nil {
			for _, id := range ids {
				if !seen[id] {
					courses = append(courses, courseEntry{ID: id, Name: id})
				}
			}
		}
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		courses:     courses,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// columns returns the columns for the active view.
func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewHoles {
		return []table.Column{
			{Title: "Hole", Width: 6},
			{Title: "Par", Width: 5},
			{Title: "Best", Width: 6},
			{Title: "Avg", Width: 6},
			{Title: "Played", Width: 8},
		}
	}

	dateWidth := 18
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 50 {
		dateWidth = min(tableWidth-32, 20)
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Strokes", Width: 9},
		{Title: "+/-", Width: 5},
		{Title: "Mode", Width: 10},
		{Title: "Date", Width: dateWidth},
	}
}

// createTable creates a table with columns for the active view.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // header, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the selected course from the store.
func (m *ScoreboardModel) load() {
	m.rounds, m.holes = nil, nil
	if m.store != nil && len(m.courses) > 0 {
		id := m.courses[m.cursor].ID
		if rounds, err := m.store.BestRounds(id, maxRounds); err == nil {
			m.rounds = rounds
		}
		if holes, err := m.store.HoleBests(id); err == nil {
			m.holes = holes
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table for the active view.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == viewHoles {
		for _, h := range m.holes {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", h.Hole),
				fmt.Sprintf("%d", h.Par),
				fmt.Sprintf("%d", h.Best),
				fmt.Sprintf("%.1f", h.AvgStrokes),
				fmt.Sprintf("%d", h.Played),
			})
		}
	} else {
		for i, r := range m.rounds {
			mode := "round"
			if r.GameID != "minigolf" {
				mode = r.GameID
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", r.Strokes),
				minigolf.FormatDiff(r.Diff()),
				mode,
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveCourse(delta int) {
	if len(m.courses) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.courses)) % len(m.courses)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextCourse), key.Matches(msg, m.keys.Right):
			m.moveCourse(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevCourse), key.Matches(msg, m.keys.Left):
			m.moveCourse(-1)
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.view == viewRounds {
				m.view = viewHoles
			} else {
				m.view = viewRounds
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST ROUNDS"
	if m.view == viewHoles {
		title = "HOLE BESTS"
	}
	if len(m.courses) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.courses[m.cursor].Name)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the course list next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Courses\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, c := range m.courses {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(c.Name, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout shows only the current course name above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.courses) > 0 {
		tab := fmt.Sprintf("< %s >", m.courses[m.cursor].Name)
		b.WriteString(centerText(tab, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.rounds) == 0
	if m.view == viewHoles {
		empty = len(m.holes) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nFinish a round to set a best!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, known []course.Course, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, known, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
