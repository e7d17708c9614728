package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndexRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{5, 5}, {4, 4}, {7, 7}, {3, 6}, {1, 1}} {
		g := NewGrid(dims[0], dims[1])
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				idx, ok := g.Index(x, y)
				require.True(t, ok)
				gx, gy := g.XY(idx)
				assert.Equal(t, x, gx)
				assert.Equal(t, y, gy)
			}
		}
	}
}

func TestGridIndexOutOfBounds(t *testing.T) {
	g := NewGrid(5, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 5, 0},
		{"y at height", 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := g.Index(tc.x, tc.y)
			assert.False(t, ok)
			assert.Equal(t, None, idx)
		})
	}
}

func TestGridNeighbor(t *testing.T) {
	g := NewGrid(5, 5)

	tests := []struct {
		name  string
		index int
		dir   Direction
		want  int
		ok    bool
	}{
		{"right from corner", 0, Right, 1, true},
		{"down from corner", 0, Down, 5, true},
		{"up off grid", 0, Up, None, false},
		{"left off grid", 0, Left, None, false},
		{"right wraps are rejected", 4, Right, None, false},
		{"left from row start", 5, Left, None, false},
		{"down off bottom", 24, Down, None, false},
		{"up from center", 12, Up, 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.Neighbor(tc.index, tc.dir)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGridDistance(t *testing.T) {
	g := NewGrid(5, 5)
	assert.Equal(t, 0, g.Distance(7, 7))
	assert.Equal(t, 4, g.Distance(0, 4))
	assert.Equal(t, 8, g.Distance(0, 24))
	assert.Equal(t, g.Distance(3, 21), g.Distance(21, 3))
}

func TestGridDirectionBetween(t *testing.T) {
	g := NewGrid(5, 5)

	for _, d := range Directions {
		n, ok := g.Neighbor(12, d)
		require.True(t, ok)

		dx, dy := g.DirectionBetween(12, n)
		wdx, wdy := d.Delta()
		assert.Equal(t, wdx, dx, d.String())
		assert.Equal(t, wdy, dy, d.String())

		got, ok := g.DirectionOf(12, n)
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := g.DirectionOf(0, 24)
	assert.False(t, ok)
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		assert.Equal(t, 1, abs(dx)+abs(dy), "exactly one unit component")

		ox, oy := d.Opposite().Delta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)

		parsed, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, parsed)
	}

	_, ok := ParseDirection("sideways")
	assert.False(t, ok)
	assert.False(t, Direction(9).Valid())
}
