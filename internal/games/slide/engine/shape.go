package engine

// PlayableCell is the shape glyph marking a cell that belongs to the board.
const PlayableCell = '.'

// Shape restricts which cells of a grid are playable.
// A zero Shape (no rows) makes every cell playable.
type Shape struct {
	grid Grid
	rows []string
}

// NewShape creates a shape for the grid from per-row glyph strings.
// Missing rows and columns are void.
func NewShape(grid Grid, rows []string) Shape {
	var copied []string
	if len(rows) > 0 {
		copied = make([]string, len(rows))
		copy(copied, rows)
	}
	return Shape{grid: grid, rows: copied}
}

// Defined reports whether a shape mask is configured.
func (s Shape) Defined() bool {
	return len(s.rows) > 0
}

// Rows returns a copy of the shape rows.
func (s Shape) Rows() []string {
	out := make([]string, len(s.rows))
	copy(out, s.rows)
	return out
}

// IsPlayable reports whether the cell is part of the board.
func (s Shape) IsPlayable(index int) bool {
	if !s.grid.Contains(index) {
		return false
	}
	if !s.Defined() {
		return true
	}
	x, y := s.grid.XY(index)
	if y >= len(s.rows) {
		return false
	}
	row := s.rows[y]
	if x >= len(row) {
		return false
	}
	return row[x] == PlayableCell
}

// DerivedWalls returns a wall between every playable cell and each in-bounds
// neighbor that is not playable. Off-grid edges get no entry; the grid already
// blocks them.
func (s Shape) DerivedWalls() []Wall {
	if !s.Defined() {
		return nil
	}

	var walls []Wall
	for i := 0; i < s.grid.Cells(); i++ {
		if !s.IsPlayable(i) {
			continue
		}
		for _, d := range Directions {
			n, ok := s.grid.Neighbor(i, d)
			if !ok || s.IsPlayable(n) {
				continue
			}
			walls = append(walls, Wall{A: i, B: n})
		}
	}
	return walls
}
