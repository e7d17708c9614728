package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/games/slide"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
)

// LevelSelectModel lets users choose the starting level of a campaign.
type LevelSelectModel struct {
	campaign  *levels.Campaign
	bests     core.BestScores
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // 1-based, 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level selector. The cursor starts on the
// first level without a recorded best.
func NewLevelSelectModel(c *levels.Campaign, bests core.BestScores, width, height int) LevelSelectModel {
	if bests == nil {
		bests = slide.NewMemoryBests()
	}

	cursor := 0
	for cursor < c.Count()-1 && bests.Best(cursor+1) > 0 {
		cursor++
	}

	return LevelSelectModel{
		campaign:  c,
		bests:     bests,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.campaign.Count()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.cursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(m.campaign.Title()), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select level:", m.width))
	b.WriteString("\n\n")

	pars := m.campaign.Pars()
	for i, name := range m.campaign.Names() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		status := "    "
		best := m.bests.Best(i + 1)
		switch {
		case best > 0 && pars[i] > 0 && slide.Rating(best, pars[i]) == slide.RatingPerfect:
			status = " ★  "
		case best > 0:
			status = " ✓  "
		}

		line := fmt.Sprintf("%s%2d. %-20s Par %3s  Best %3s%s",
			cursor, i+1, name, countText(pars[i]), countText(best), status)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// countText renders a move count, or a dash when unset.
func countText(n int) string {
	if n <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}

// Selected returns the chosen 1-based level, or 0 if none.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level selection and returns the chosen level,
// or 0 when the user backed out or quit.
func RunLevelSelector(c *levels.Campaign, bests core.BestScores, cfg core.RuntimeConfig) (int, error) {
	model := NewLevelSelectModel(c, bests, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
