package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide/internal/games/slide"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
	"github.com/vovakirdan/slide/internal/registry"
	"github.com/vovakirdan/slide/internal/storage"
)

// Best-moves board layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show game list sidebar
	sidebarWidth       = 22 // Width of game list sidebar
)

// BestsKeyMap defines the key bindings for the best-moves board.
type BestsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BestsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BestsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultBestsKeyMap returns default key bindings.
func DefaultBestsKeyMap() BestsKeyMap {
	return BestsKeyMap{
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
			key.WithHelp("left/h", "prev game"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
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

// campaignGame is a registered game that plays a campaign.
type campaignGame struct {
	registry.GameInfo
	campaign *levels.Campaign
}

// campaignGames lists the registered games that expose their campaign.
func campaignGames() []campaignGame {
	var out []campaignGame
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		if cg, ok := g.(interface{ Campaign() *levels.Campaign }); ok {
			out = append(out, campaignGame{GameInfo: info, campaign: cg.Campaign()})
		}
	}
	return out
}

// BestsModel is the Bubble Tea model for the per-level best moves board.
type BestsModel struct {
	games       []campaignGame
	gameCursor  int
	store       *storage.Store
	rows        []table.Row
	table       table.Model
	help        help.Model
	keys        BestsKeyMap
	width       int
	height      int
	loadErr     error
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewBestsModel creates a new best moves board.
func NewBestsModel(store *storage.Store, width, height int) BestsModel {
	h := help.New()
	h.ShowAll = false

	m := BestsModel{
		games:       campaignGames(),
		store:       store,
		keys:        DefaultBestsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadBests()
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BestsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 18},
		{Title: "Par", Width: 5},
		{Title: "Best", Width: 5},
		{Title: "Rating", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadBests loads the rows for the selected game.
func (m *BestsModel) loadBests() {
	g := m.games[m.gameCursor]
	m.rows, m.loadErr = bestRows(g.ID, g.campaign, m.store)
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

// bestRows builds one table row per campaign level.
func bestRows(gameID string, c *levels.Campaign, store *storage.Store) ([]table.Row, error) {
	byLevel := make(map[int]int)
	if store != nil {
		entries, err := store.AllBests(gameID)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			byLevel[e.Level] = e.Moves
		}
	}

	pars := c.Pars()
	rows := make([]table.Row, c.Count())
	for i, name := range c.Names() {
		best := byLevel[i+1]
		rating := ""
		if best > 0 {
			rating = slide.Rating(best, pars[i])
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			name,
			countText(pars[i]),
			countText(best),
			rating,
		}
	}
	return rows, nil
}

// Init initializes the board.
func (m BestsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BestsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadBests()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.loadBests()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BestsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST MOVES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("BEST MOVES - %s", m.games[m.gameCursor].Title)
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

// renderWideLayout renders the board with a sidebar for game selection.
func (m BestsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the board with the current game above the table.
func (m BestsModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.games) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.gameCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an explanation.
func (m BestsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case len(m.games) == 0:
		return emptyStyle.Render("No campaigns registered.")
	case m.store == nil:
		return emptyStyle.Render("Best moves are not saved without a database.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load best moves.")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BestsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BestsModel) IsQuitting() bool {
	return m.quitting
}

// RunBests runs the best moves board.
// Returns true if user wants to go back to menu, false if quitting.
func RunBests(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewBestsModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BestsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
