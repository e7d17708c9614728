package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/metrics"
	"github.com/vovakirdan/slide/internal/registry"
	"github.com/vovakirdan/slide/internal/storage"
)

// Optional game capabilities discovered by interface checks.
type (
	bestsSetter interface{ SetBests(core.BestScores) }
	resizer     interface{ Resize(w, h int) }
	rater       interface{ Rate(level, moves int) string }
)

// helpHeight is the number of rows below the game screen used by the help line.
const helpHeight = 1

// Options are the collaborators of a play model. All fields are optional.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Metrics *metrics.Metrics
	Theme   *Theme

	// Embedded models return to the caller on Back instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for playing a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	theme      Theme
	config     core.RuntimeConfig
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// With a store, best move counts are read from and written to the database.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	if opts.Store != nil {
		if gb, ok := game.(bestsSetter); ok {
			bests := opts.Store.Bests(game.ID())
			logger := opts.Logger
			bests.OnError = func(err error) {
				logger.Warn("best moves unavailable", "game", game.ID(), "error", err)
			}
			gb.SetBests(bests)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		opts:      opts,
		theme:     theme,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH -= helpHeight
	m.game.Reset(cfg)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Every key is one game step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var frame core.InputFrame
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionBack) {
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Empty() {
		return m, nil
	}

	m.step(frame)
	return m, nil
}

// step runs one game step and records its events.
func (m *Model) step(frame core.InputFrame) {
	result := m.game.Step(frame)
	m.gameState = result.State

	if m.opts.Metrics != nil {
		var rate func(level, moves int) string
		if r, ok := m.game.(rater); ok {
			rate = r.Rate
		}
		m.opts.Metrics.Observe(m.game.ID(), result.Events, rate)
	}

	for _, e := range result.Events {
		if e.Kind != core.EventSolved {
			continue
		}
		m.opts.Logger.Debug("level solved", "game", m.game.ID(), "level", e.Level, "moves", e.Moves)
		if m.opts.Store == nil {
			continue
		}
		if _, err := m.opts.Store.RecordSolve(m.game.ID(), e.Level, e.Moves); err != nil {
			m.opts.Logger.Warn("could not record solve", "game", m.game.ID(), "error", err)
		}
	}
}

// handleResize processes window resize events without losing progress.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	h := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, h)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, h)
	} else {
		cfg := m.config
		cfg.ScreenH = h
		m.game.Reset(cfg)
	}
	m.gameState = m.game.State()

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".slide", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	keys := m.keyMapper.Keys()
	helpView := m.help.ShortHelpView(keys.ShortHelp())
	if m.help.ShowAll {
		helpView = m.help.FullHelpView(keys.FullHelp())
	}

	// The full help covers the bottom rows of the screen
	rows := strings.Split(m.theme.RenderScreen(m.screen), "\n")
	extra := strings.Count(helpView, "\n") + 1 - helpHeight
	if extra > 0 && extra < len(rows) {
		rows = rows[:len(rows)-extra]
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return strings.Join(rows, "\n") + "\n" + helpStyle.Render(helpView)
}

// Game returns the game being played.
func (m Model) Game() registry.Game {
	return m.game
}

// State returns the game state after the last step.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
