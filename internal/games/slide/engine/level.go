package engine

// Spec describes a level layout. Every slice is optional except Pieces;
// missing slices default to empty.
type Spec struct {
	Width   int
	Height  int
	Walls   []Wall
	Pieces  []int
	Targets []int
	Shape   []string
	Hands   []int
	Par     int
	Info    string
}

// Move records one applied move for undo.
type Move struct {
	Piece int
	Src   int
	Dst   int
}

// Level owns the board layout and the puzzle state of a single level:
// piece positions, the move counter, the undo stack and the selected piece.
// A Level is used by one controller at a time.
type Level struct {
	grid    Grid
	shape   Shape
	walls   WallSet
	targets []int
	hands   map[int]struct{}
	handsAt []int
	par     int
	info    string

	initial []int
	pieces  []int

	selection int
	moves     int
	stack     []Move
}

// NewLevel builds a level from its spec. Slices are copied, so the spec can
// be reused to build fresh levels.
func NewLevel(spec Spec) *Level {
	grid := NewGrid(spec.Width, spec.Height)
	shape := NewShape(grid, spec.Shape)

	l := &Level{
		grid:    grid,
		shape:   shape,
		walls:   NewWallSet(grid, spec.Walls, shape),
		targets: cloneInts(spec.Targets),
		hands:   make(map[int]struct{}, len(spec.Hands)),
		handsAt: cloneInts(spec.Hands),
		par:     spec.Par,
		info:    spec.Info,
		initial: cloneInts(spec.Pieces),
		pieces:  cloneInts(spec.Pieces),
	}
	for _, h := range spec.Hands {
		l.hands[h] = struct{}{}
	}
	return l
}

// Reset restores the initial piece positions and clears the session state.
func (l *Level) Reset() {
	copy(l.pieces, l.initial)
	l.selection = 0
	l.moves = 0
	l.stack = l.stack[:0]
}

// Grid returns the level grid.
func (l *Level) Grid() Grid { return l.grid }

// Width returns the grid width.
func (l *Level) Width() int { return l.grid.Width }

// Height returns the grid height.
func (l *Level) Height() int { return l.grid.Height }

// Shape returns the board shape.
func (l *Level) Shape() Shape { return l.shape }

// Par returns the designer move count for the level.
func (l *Level) Par() int { return l.par }

// Info returns the optional level hint text.
func (l *Level) Info() string { return l.info }

// XY returns the coordinates of a cell index.
func (l *Level) XY(index int) (x, y int) { return l.grid.XY(index) }

// Index returns the cell at (x, y), or (None, false) when out of bounds.
func (l *Level) Index(x, y int) (int, bool) { return l.grid.Index(x, y) }

// Neighbor returns the adjacent cell in dir, or (None, false) off grid.
func (l *Level) Neighbor(index int, dir Direction) (int, bool) {
	return l.grid.Neighbor(index, dir)
}

// Distance returns the Manhattan distance between two cells.
func (l *Level) Distance(a, b int) int { return l.grid.Distance(a, b) }

// CheckShape reports whether the cell is playable.
func (l *Level) CheckShape(index int) bool { return l.shape.IsPlayable(index) }

// HasWall reports whether movement from index in dir is blocked by a wall or
// the grid edge.
func (l *Level) HasWall(index int, dir Direction) bool { return l.walls.HasWall(index, dir) }

// Walls returns the resolved wall set (authored plus shape-derived).
func (l *Level) Walls() []Wall { return l.walls.Walls() }

// IsHand reports whether the cell is a hand cell.
func (l *Level) IsHand(index int) bool {
	_, ok := l.hands[index]
	return ok
}

// Hands returns the hand cells.
func (l *Level) Hands() []int { return cloneInts(l.handsAt) }

// Pieces returns the current piece positions.
func (l *Level) Pieces() []int { return cloneInts(l.pieces) }

// PieceCount returns the number of pieces.
func (l *Level) PieceCount() int { return len(l.pieces) }

// Position returns the cell of a piece, or (None, false) for an unknown piece.
func (l *Level) Position(piece int) (int, bool) {
	if piece < 0 || piece >= len(l.pieces) {
		return None, false
	}
	return l.pieces[piece], true
}

// Targets returns the target cells.
func (l *Level) Targets() []int { return cloneInts(l.targets) }

// IsExtra reports whether the piece has no matching target.
func (l *Level) IsExtra(piece int) bool { return piece >= len(l.targets) }

// Selection returns the active piece index.
func (l *Level) Selection() int { return l.selection }

// MoveCount returns the number of applied moves.
func (l *Level) MoveCount() int { return l.moves }

// History returns the applied moves, oldest first.
func (l *Level) History() []Move {
	out := make([]Move, len(l.stack))
	copy(out, l.stack)
	return out
}

// PieceAt returns the first piece occupying the cell.
func (l *Level) PieceAt(index int) (int, bool) {
	for i, p := range l.pieces {
		if p == index {
			return i, true
		}
	}
	return None, false
}

// DoMove slides the piece in dir. It returns false, leaving the state
// untouched, when the piece cannot move.
func (l *Level) DoMove(piece int, dir Direction) bool {
	dst, ok := l.ComputeMove(piece, dir)
	if !ok {
		return false
	}

	l.stack = append(l.stack, Move{Piece: piece, Src: l.pieces[piece], Dst: dst})
	l.pieces[piece] = dst
	l.moves++
	return true
}

// MoveSelected slides the selected piece in dir.
func (l *Level) MoveSelected(dir Direction) bool {
	return l.DoMove(l.selection, dir)
}

// UndoMove reverts the most recent move. Returns false on an empty history.
func (l *Level) UndoMove() (Move, bool) {
	if len(l.stack) == 0 {
		return Move{}, false
	}

	last := l.stack[len(l.stack)-1]
	l.stack = l.stack[:len(l.stack)-1]
	l.pieces[last.Piece] = last.Src
	l.moves--
	return last, true
}

// NextSelection cycles the selection forward, or backward when previous is
// set, wrapping at both ends. Returns the new selection.
func (l *Level) NextSelection(previous bool) int {
	n := len(l.pieces)
	if n == 0 {
		return l.selection
	}
	if previous {
		l.selection = (l.selection + n - 1) % n
	} else {
		l.selection = (l.selection + 1) % n
	}
	return l.selection
}

// Select makes piece the active one. Out-of-range requests are ignored.
func (l *Level) Select(piece int) bool {
	if piece < 0 || piece >= len(l.pieces) {
		return false
	}
	l.selection = piece
	return true
}

// Complete reports whether every target-bearing piece sits on its target.
// Extra pieces are ignored.
func (l *Level) Complete() bool {
	for i, t := range l.targets {
		if i >= len(l.pieces) || l.pieces[i] != t {
			return false
		}
	}
	return true
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}
