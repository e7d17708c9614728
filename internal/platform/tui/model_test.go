package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/games/slide"
	"github.com/vovakirdan/slide/internal/games/slide/engine"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
	"github.com/vovakirdan/slide/internal/metrics"
	"github.com/vovakirdan/slide/internal/storage"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func dirKey(d engine.Direction) string {
	return map[engine.Direction]string{
		engine.Up:    "up",
		engine.Down:  "down",
		engine.Left:  "left",
		engine.Right: "right",
	}[d]
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 25}

func newPlayModel(opts Options) (Model, *slide.Game) {
	g := slide.FromCampaign(levels.MustBuiltin("classic"))
	m := NewModel(g, testConfig, opts)
	m.Init()
	return m, g
}

func TestModelMoveAndUndo(t *testing.T) {
	m, g := newPlayModel(Options{})

	next := press(t, m, "right").(Model)
	assert.Equal(t, 1, next.State().Moves)
	assert.Equal(t, []int{4, 24}, g.Level().Pieces())

	next = press(t, next, "u").(Model)
	assert.Equal(t, 0, next.State().Moves)
	assert.Equal(t, []int{0, 24}, g.Level().Pieces())

	// Unbound keys do nothing
	next = press(t, next, "x").(Model)
	assert.Equal(t, 0, next.State().Moves)
}

func TestModelQuitAndBack(t *testing.T) {
	m, _ := newPlayModel(Options{})

	next, cmd := m.Update(keyMsg("q"))
	assert.True(t, next.(Model).IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())

	// Standalone: back quits
	next, cmd = m.Update(keyMsg("esc"))
	assert.True(t, next.(Model).IsQuitting())
	assert.NotNil(t, cmd)

	// Embedded: back returns to the caller
	m, _ = newPlayModel(Options{Embedded: true})
	next, cmd = m.Update(keyMsg("esc"))
	assert.True(t, next.(Model).BackToMenu())
	assert.False(t, next.(Model).IsQuitting())
	assert.Nil(t, cmd)
}

func TestModelResizeKeepsProgress(t *testing.T) {
	m, g := newPlayModel(Options{})
	next := press(t, m, "right", "down")

	next, _ = next.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 2, g.State().Moves)
	assert.Equal(t, 2, next.(Model).State().Moves)

	// Too small pauses the game without resetting it
	next, _ = next.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.True(t, next.(Model).State().Paused)
	assert.Contains(t, next.View(), "Window too small")
	assert.Equal(t, 2, g.State().Moves)
}

func TestModelView(t *testing.T) {
	m, _ := newPlayModel(Options{})
	next := press(t, m, "right")

	view := next.View()
	assert.Contains(t, view, "Moves 1")
	assert.Contains(t, view, "First Steps")
	assert.Contains(t, view, "undo")

	// Full help stays within the terminal height
	next = press(t, next, "?")
	full := next.View()
	assert.Contains(t, full, "prev level")
	assert.Len(t, splitLines(full), testConfig.ScreenH)
	assert.Len(t, splitLines(view), testConfig.ScreenH)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// Solving through hints records the best, the solve and the metrics.
func TestModelSolvePersists(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()
	reg := metrics.New()

	var tm tea.Model
	m, g := newPlayModel(Options{Store: store, Metrics: reg})
	tm = m

	for !g.State().Complete {
		tm = press(t, tm, "h")
		hint, ok := g.CurrentHint()
		require.True(t, ok)
		tm = press(t, tm, dirKey(hint.Dir))
	}
	assert.True(t, tm.(Model).State().Complete)

	best, err := store.Best("slide", 1)
	require.NoError(t, err)
	assert.Equal(t, 7, best)

	solves, err := store.RecentSolves("slide", 0)
	require.NoError(t, err)
	require.Len(t, solves, 1)
	assert.Equal(t, 7, solves[0].Moves)

	assert.Equal(t, 7.0, testutil.ToFloat64(reg.MovesTotal.WithLabelValues("slide")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.LevelsSolvedTotal.WithLabelValues("slide", slide.RatingPerfect)))

	// A fresh model over the same store sees the best
	_, g2 := newPlayModel(Options{Store: store})
	assert.Equal(t, 7, g2.Best())
	assert.True(t, g2.NextLevel(), "a stored best unlocks the next level")
}

func TestThemeRender(t *testing.T) {
	theme := NewTheme([]string{"#ff0000"}, "")
	assert.NotEqual(t, theme.Style(core.ColorPiece1).Render("x"), "")
	assert.Equal(t, theme.Style(core.ColorDefault), theme.Style(core.Color(200)))

	s := core.NewScreen(3, 2)
	s.SetColored(0, 0, 'a', core.ColorPiece1)
	s.SetColored(1, 0, 'b', core.ColorPiece1)
	s.DrawText(0, 1, "cd")
	out := theme.RenderScreen(s)
	assert.Len(t, splitLines(out), 2)
	assert.Contains(t, out, "cd")
}
