package core

// Color represents a foreground color for a screen cell.
// The platform renderer resolves each color to a terminal style.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorWall
	ColorGrid
	ColorText
	ColorDim
	ColorHighlight
	ColorHand
	ColorExtra
	ColorPiece1
	ColorPiece2
	ColorPiece3
	ColorPiece4
	ColorPiece5
)

// PieceColorCount is the number of distinct colors for target-bearing pieces.
const PieceColorCount = 5

// DefaultPiecePalette holds the hex colors of the piece colors, in order.
var DefaultPiecePalette = [PieceColorCount]string{
	"#e1283f",
	"#eb7e28",
	"#5fd14e",
	"#3995cc",
	"#4438c5",
}

// DefaultExtraColor is the hex color of pieces without a target.
const DefaultExtraColor = "#7a787d"

// PieceColor returns the color of the i-th target-bearing piece.
// Colors repeat once the palette is exhausted.
func PieceColor(i int) Color {
	if i < 0 {
		return ColorExtra
	}
	return ColorPiece1 + Color(i%PieceColorCount)
}

// IsPiece reports whether c is one of the piece palette colors.
func (c Color) IsPiece() bool {
	return c >= ColorPiece1 && c <= ColorPiece5
}
