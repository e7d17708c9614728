// Package engine implements the sliding-block puzzle rules: the grid model,
// board shapes, walls, the sliding move resolver and the per-level
// undo/selection state machine.
//
// The package is pure. It has no dependencies outside the standard library and
// never returns errors: invalid requests resolve to sentinel values.
package engine

// None is the sentinel cell index returned for out-of-bounds lookups.
const None = -1

// Direction is one of the four sliding directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit (dx, dy) step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection converts a name ("up", "down", "left", "right") to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return Up, false
}

// Grid converts between row-major cell indices and (x, y) coordinates.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether index addresses a cell of the grid.
func (g Grid) Contains(index int) bool {
	return index >= 0 && index < g.Cells()
}

// XY returns the coordinates of a cell index.
func (g Grid) XY(index int) (x, y int) {
	return index % g.Width, index / g.Width
}

// Index returns the cell index at (x, y), or (None, false) when out of bounds.
func (g Grid) Index(x, y int) (int, bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return None, false
	}
	return y*g.Width + x, true
}

// Neighbor returns the adjacent cell in the given direction,
// or (None, false) when it would fall off the grid.
func (g Grid) Neighbor(index int, dir Direction) (int, bool) {
	x, y := g.XY(index)
	dx, dy := dir.Delta()
	return g.Index(x+dx, y+dy)
}

// Distance returns the Manhattan distance between two cells.
func (g Grid) Distance(a, b int) int {
	ax, ay := g.XY(a)
	bx, by := g.XY(b)
	return abs(ax-bx) + abs(ay-by)
}

// DirectionBetween returns the unit step from a to b.
// The caller guarantees that a and b are grid-adjacent.
func (g Grid) DirectionBetween(a, b int) (dx, dy int) {
	ax, ay := g.XY(a)
	bx, by := g.XY(b)
	return sign(bx - ax), sign(by - ay)
}

// DirectionOf resolves the step from a to b to a Direction.
// Returns false when the cells are not adjacent.
func (g Grid) DirectionOf(a, b int) (Direction, bool) {
	for _, d := range Directions {
		if n, ok := g.Neighbor(a, d); ok && n == b {
			return d, true
		}
	}
	return Up, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
