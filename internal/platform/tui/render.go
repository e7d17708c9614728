package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide/internal/core"
)

// Theme maps core.Color to lipgloss styles.
type Theme struct {
	styles map[core.Color]lipgloss.Style
}

// NewTheme builds a theme from hex piece colors and the extra-piece color.
// Missing piece colors fall back to the default palette.
func NewTheme(pieceColors []string, extraColor string) Theme {
	if extraColor == "" {
		extraColor = core.DefaultExtraColor
	}

	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:   lipgloss.NewStyle(),
		core.ColorWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		core.ColorGrid:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		core.ColorHand:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		core.ColorExtra:     lipgloss.NewStyle().Foreground(lipgloss.Color(extraColor)),
	}

	for i := range core.PieceColorCount {
		hex := core.DefaultPiecePalette[i]
		if i < len(pieceColors) && pieceColors[i] != "" {
			hex = pieceColors[i]
		}
		styles[core.PieceColor(i)] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	return Theme{styles: styles}
}

// DefaultTheme returns the theme with the default palette.
func DefaultTheme() Theme {
	return NewTheme(nil, "")
}

// Style returns the style for a color, or the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the default theme.
func RenderScreen(s *core.Screen) string {
	return DefaultTheme().RenderScreen(s)
}
