package engine

// Wall blocks movement between two adjacent cells, in both directions.
type Wall struct {
	A int
	B int
}

// normalize orders the pair so that lookups ignore orientation.
func (w Wall) normalize() Wall {
	if w.A > w.B {
		return Wall{A: w.B, B: w.A}
	}
	return w
}

// Horizontal reports whether the wall lies between vertically adjacent cells,
// so that it is drawn as a horizontal segment.
func (w Wall) Horizontal(g Grid) bool {
	ax, _ := g.XY(w.A)
	bx, _ := g.XY(w.B)
	return ax == bx
}

// WallSet is the immutable union of authored and shape-derived walls.
type WallSet struct {
	grid   Grid
	walls  []Wall
	lookup map[Wall]struct{}
}

// NewWallSet concatenates authored walls with the walls derived from shape.
func NewWallSet(grid Grid, authored []Wall, shape Shape) WallSet {
	derived := shape.DerivedWalls()
	walls := make([]Wall, 0, len(authored)+len(derived))
	walls = append(walls, authored...)
	walls = append(walls, derived...)

	lookup := make(map[Wall]struct{}, len(walls))
	for _, w := range walls {
		lookup[w.normalize()] = struct{}{}
	}

	return WallSet{grid: grid, walls: walls, lookup: lookup}
}

// Walls returns every wall of the set, authored walls first.
func (s WallSet) Walls() []Wall {
	out := make([]Wall, len(s.walls))
	copy(out, s.walls)
	return out
}

// Len returns the number of wall entries.
func (s WallSet) Len() int {
	return len(s.walls)
}

// Blocks reports whether a wall separates cells a and b.
func (s WallSet) Blocks(a, b int) bool {
	_, ok := s.lookup[Wall{A: a, B: b}.normalize()]
	return ok
}

// HasWall reports whether movement from index in dir is blocked, either by the
// grid edge or by a wall.
func (s WallSet) HasWall(index int, dir Direction) bool {
	n, ok := s.grid.Neighbor(index, dir)
	if !ok {
		return true
	}
	return s.Blocks(index, n)
}
