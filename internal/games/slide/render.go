package slide

import (
	"fmt"

	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/games/slide/engine"
)

const (
	cellWidth  = 4 // Columns per cell, including the left edge
	cellHeight = 2 // Rows per cell, including the top edge

	hudTop    = 3 // Rows above the board
	hudBottom = 3 // Rows below the board
	minWidth  = 40
)

// Edge bits used to pick a box-drawing rune for a corner.
const (
	edgeUp = 1 << iota
	edgeDown
	edgeLeft
	edgeRight
)

var cornerRunes = [16]rune{
	0:                                        ' ',
	edgeUp:                                   '╵',
	edgeDown:                                 '╷',
	edgeUp | edgeDown:                        '│',
	edgeLeft:                                 '╴',
	edgeUp | edgeLeft:                        '┘',
	edgeDown | edgeLeft:                      '┐',
	edgeUp | edgeDown | edgeLeft:             '┤',
	edgeRight:                                '╶',
	edgeUp | edgeRight:                       '└',
	edgeDown | edgeRight:                     '┌',
	edgeUp | edgeDown | edgeRight:            '├',
	edgeLeft | edgeRight:                     '─',
	edgeUp | edgeLeft | edgeRight:            '┴',
	edgeDown | edgeLeft | edgeRight:          '┬',
	edgeUp | edgeDown | edgeLeft | edgeRight: '┼',
}

// Runes for cell interiors.
const (
	pieceRune      = '█'
	pieceHomeRune  = '▣'
	targetRune     = '○'
	handRune       = '◇'
	gridDotRune    = '·'
	selectOpenRune = '['
	selectEndRune  = ']'
)

// boardSize returns the drawn size of a level's board.
func boardSize(l *engine.Level) (w, h int) {
	return l.Width()*cellWidth + 1, l.Height()*cellHeight + 1
}

// minScreenSize returns the smallest screen that fits the board and HUD.
func minScreenSize(l *engine.Level) (w, h int) {
	bw, bh := boardSize(l)
	return max(bw, minWidth), bh + hudTop + hudBottom
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.level == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bw, bh := boardSize(g.level)
	board := core.NewRect((dst.Width()-bw)/2, hudTop, bw, bh)

	g.renderHUD(dst)
	g.renderBoard(dst, board.X, board.Y)
	g.renderFooter(dst, board.Bottom())
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := minScreenSize(g.level)
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorText)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h), core.ColorDim)
}

// renderHUD draws the title, level and move counters.
func (g *Game) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf("%s  Level %d/%d: %s", g.title, g.number, g.campaign.Count(), g.LevelName())
	dst.DrawTextCentered(0, title, core.ColorHighlight)

	stats := fmt.Sprintf("Moves %d", g.level.MoveCount())
	if par := g.level.Par(); par > 0 {
		stats += fmt.Sprintf("   Par %d", par)
	}
	if best := g.Best(); best > 0 {
		stats += fmt.Sprintf("   Best %d", best)
	}
	dst.DrawTextCentered(1, stats, core.ColorText)
}

// renderBoard draws edges, walls, targets, hands and pieces.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	l := g.level

	for idx := range l.Grid().Cells() {
		if !l.CheckShape(idx) {
			continue
		}
		x, y := l.XY(idx)
		px, py := ox+x*cellWidth, oy+y*cellHeight

		if l.HasWall(idx, engine.Up) {
			dst.DrawHLine(px+1, py, cellWidth-1, '─', core.ColorWall)
		}
		if l.HasWall(idx, engine.Down) {
			dst.DrawHLine(px+1, py+cellHeight, cellWidth-1, '─', core.ColorWall)
		}
		if l.HasWall(idx, engine.Left) {
			dst.SetColored(px, py+1, '│', core.ColorWall)
		}
		if l.HasWall(idx, engine.Right) {
			dst.SetColored(px+cellWidth, py+1, '│', core.ColorWall)
		}

		g.renderCell(dst, idx, px+1, py+1)
	}

	g.renderCorners(dst, ox, oy)
}

// renderCorners joins wall segments at every grid corner.
func (g *Game) renderCorners(dst *core.Screen, ox, oy int) {
	l := g.level
	for cy := 0; cy <= l.Height(); cy++ {
		for cx := 0; cx <= l.Width(); cx++ {
			px, py := ox+cx*cellWidth, oy+cy*cellHeight

			mask := 0
			if dst.Get(px, py-1) == '│' {
				mask |= edgeUp
			}
			if dst.Get(px, py+1) == '│' {
				mask |= edgeDown
			}
			if dst.Get(px-1, py) == '─' {
				mask |= edgeLeft
			}
			if dst.Get(px+1, py) == '─' {
				mask |= edgeRight
			}

			switch {
			case mask != 0:
				dst.SetColored(px, py, cornerRunes[mask], core.ColorWall)
			case g.touchesPlayable(cx, cy):
				dst.SetColored(px, py, gridDotRune, core.ColorGrid)
			}
		}
	}
}

// touchesPlayable reports whether a grid corner borders a playable cell.
func (g *Game) touchesPlayable(cx, cy int) bool {
	for _, d := range [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		if idx, ok := g.level.Index(cx+d[0], cy+d[1]); ok && g.level.CheckShape(idx) {
			return true
		}
	}
	return false
}

// renderCell draws the three interior columns of a playable cell.
func (g *Game) renderCell(dst *core.Screen, idx, x, y int) {
	l := g.level

	if piece, ok := l.PieceAt(idx); ok {
		color := core.ColorExtra
		if !l.IsExtra(piece) {
			color = core.PieceColor(piece)
		}

		mid := pieceRune
		if !l.IsExtra(piece) && l.Targets()[piece] == idx {
			mid = pieceHomeRune
		}

		left, right := pieceRune, pieceRune
		if piece == l.Selection() && l.PieceCount() > 1 {
			left, right = selectOpenRune, selectEndRune
			if hint, ok := g.CurrentHint(); ok && hint.Piece == piece {
				left, right = hintArrows(hint.Dir)
			}
		}

		dst.SetColored(x, y, left, color)
		dst.SetColored(x+1, y, mid, color)
		dst.SetColored(x+2, y, right, color)
		return
	}

	hand := l.IsHand(idx)
	if hand {
		dst.SetColored(x, y, handRune, core.ColorHand)
		dst.SetColored(x+2, y, handRune, core.ColorHand)
	}

	for i, t := range l.Targets() {
		if t == idx {
			dst.SetColored(x+1, y, targetRune, core.PieceColor(i))
			return
		}
	}
	if hand {
		dst.SetColored(x+1, y, handRune, core.ColorHand)
	}
}

// hintArrows returns the bracket runes pointing toward a hinted move.
func hintArrows(d engine.Direction) (rune, rune) {
	switch d {
	case engine.Up:
		return '▲', '▲'
	case engine.Down:
		return '▼', '▼'
	case engine.Left:
		return '◀', '◀'
	default:
		return '▶', '▶'
	}
}

// renderFooter draws the level info and status message below the board.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if info := g.level.Info(); info != "" {
		dst.DrawTextCentered(y+1, info, core.ColorDim)
	}
	if g.message != "" {
		dst.DrawTextCentered(y+2, g.message, core.ColorHighlight)
	}
}

// renderOverlays draws pause, solve and campaign-complete boxes.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	moves := g.level.MoveCount()

	switch {
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.gameOver:
		drawOverlay(dst, board,
			"CAMPAIGN COMPLETE!",
			fmt.Sprintf("All %d levels solved", g.campaign.Count()),
			"R: play again")
	case g.complete:
		drawOverlay(dst, board,
			fmt.Sprintf("Solved in %d moves", moves),
			g.ratingLine(moves),
			"Enter: next level  U: undo")
	}
}

func (g *Game) ratingLine(moves int) string {
	par := g.level.Par()
	if par <= 0 {
		return "Well done!"
	}
	if Rating(moves, par) == RatingPerfect {
		return fmt.Sprintf("Perfect! Par is %d", par)
	}
	return fmt.Sprintf("Par is %d, try fewer", par)
}

// drawOverlay draws a boxed message centered over the board.
func drawOverlay(dst *core.Screen, over core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.CenteredRect(over, maxLen+4, len(lines)+2)
	dst.ClearRect(box)
	dst.DrawBox(box, core.ColorHighlight)

	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorText)
	}
}
