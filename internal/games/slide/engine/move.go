package engine

// ComputeMove returns the cell where the piece stops when pushed in dir.
// The piece slides until a wall, the grid edge or another piece blocks the
// next step. A hand cell halts the piece after it has moved onto it.
// Returns (None, false) when the piece cannot leave its cell.
func (l *Level) ComputeMove(piece int, dir Direction) (int, bool) {
	if piece < 0 || piece >= len(l.pieces) || !dir.Valid() {
		return None, false
	}

	start := l.pieces[piece]
	current := start
	for {
		if l.walls.HasWall(current, dir) {
			break
		}
		next, _ := l.grid.Neighbor(current, dir)
		if _, occupied := l.PieceAt(next); occupied {
			break
		}
		current = next
		if l.IsHand(current) {
			break
		}
	}

	if current == start {
		return None, false
	}
	return current, true
}

// CanMove reports whether the piece can move at least one cell in dir.
func (l *Level) CanMove(piece int, dir Direction) bool {
	_, ok := l.ComputeMove(piece, dir)
	return ok
}

// Moves lists the directions in which the piece can move.
func (l *Level) Moves(piece int) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if l.CanMove(piece, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
