package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plusRows is a 7x7 board whose playable region is a plus sign.
var plusRows = []string{
	"##...##",
	"##...##",
	".......",
	".......",
	".......",
	"##...##",
	"##...##",
}

func TestShapeWithoutRowsIsFullyPlayable(t *testing.T) {
	g := NewGrid(4, 3)
	s := NewShape(g, nil)

	assert.False(t, s.Defined())
	for i := 0; i < g.Cells(); i++ {
		assert.True(t, s.IsPlayable(i))
	}
	assert.False(t, s.IsPlayable(-1))
	assert.False(t, s.IsPlayable(g.Cells()))
	assert.Empty(t, s.DerivedWalls())
}

func TestShapeShortRowsAreVoid(t *testing.T) {
	g := NewGrid(3, 3)
	s := NewShape(g, []string{"...", ".."})

	assert.True(t, s.IsPlayable(1))
	assert.False(t, s.IsPlayable(5), "missing column")
	assert.False(t, s.IsPlayable(7), "missing row")
}

func TestPlusShapeDerivedWalls(t *testing.T) {
	g := NewGrid(7, 7)
	s := NewShape(g, plusRows)

	walls := s.DerivedWalls()
	assert.Len(t, walls, 16)

	// Every derived wall separates a playable cell from a void one.
	for _, w := range walls {
		assert.True(t, s.IsPlayable(w.A), "wall %v", w)
		assert.False(t, s.IsPlayable(w.B), "wall %v", w)
		assert.Equal(t, 1, g.Distance(w.A, w.B))
	}

	// Every playable/void boundary is walled.
	set := NewWallSet(g, nil, s)
	for i := 0; i < g.Cells(); i++ {
		if !s.IsPlayable(i) {
			continue
		}
		for _, d := range Directions {
			n, ok := g.Neighbor(i, d)
			if ok && !s.IsPlayable(n) {
				assert.True(t, set.HasWall(i, d), "cell %d %s", i, d)
			}
		}
	}
}

func TestWallSetBlocksBothWays(t *testing.T) {
	g := NewGrid(5, 5)
	set := NewWallSet(g, []Wall{{A: 12, B: 17}}, NewShape(g, nil))

	assert.True(t, set.Blocks(12, 17))
	assert.True(t, set.Blocks(17, 12))
	assert.True(t, set.HasWall(12, Down))
	assert.True(t, set.HasWall(17, Up))
	assert.False(t, set.HasWall(12, Up))
	assert.Equal(t, 1, set.Len())
}

func TestWallSetEdgesBlock(t *testing.T) {
	g := NewGrid(3, 3)
	set := NewWallSet(g, nil, NewShape(g, nil))

	assert.True(t, set.HasWall(0, Up))
	assert.True(t, set.HasWall(0, Left))
	assert.True(t, set.HasWall(8, Down))
	assert.True(t, set.HasWall(8, Right))
	assert.False(t, set.HasWall(4, Left))
}

func TestHasWallSymmetric(t *testing.T) {
	g := NewGrid(7, 7)
	set := NewWallSet(g, []Wall{{A: 24, B: 25}, {A: 31, B: 24}}, NewShape(g, plusRows))

	for c := 0; c < g.Cells(); c++ {
		for _, d := range Directions {
			n, ok := g.Neighbor(c, d)
			if !ok {
				require.True(t, set.HasWall(c, d))
				continue
			}
			assert.Equal(t, set.HasWall(c, d), set.HasWall(n, d.Opposite()), "cell %d %s", c, d)
		}
	}
}

func TestWallsAuthoredFirst(t *testing.T) {
	g := NewGrid(5, 5)
	rows := []string{"#####", "##.##", "##.##", "##.##", "#####"}
	set := NewWallSet(g, []Wall{{A: 10, B: 15}}, NewShape(g, rows))

	walls := set.Walls()
	require.NotEmpty(t, walls)
	assert.Equal(t, Wall{A: 10, B: 15}, walls[0])
	assert.Len(t, walls, 1+8)
}

func TestWallHorizontal(t *testing.T) {
	g := NewGrid(5, 5)
	assert.True(t, Wall{A: 12, B: 17}.Horizontal(g))
	assert.False(t, Wall{A: 18, B: 19}.Horizontal(g))
}
