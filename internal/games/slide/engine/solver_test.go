package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveFirstSteps(t *testing.T) {
	l := firstSteps()

	steps, ok := Solve(l, 0)
	require.True(t, ok)
	assert.Len(t, steps, 7)
	assert.Equal(t, []int{0, 24}, l.Pieces(), "solving does not touch the level")

	for _, s := range steps {
		require.True(t, l.DoMove(s.Piece, s.Dir))
	}
	assert.True(t, l.Complete())
}

func TestSolveAlreadyComplete(t *testing.T) {
	l := NewLevel(Spec{Width: 3, Height: 1, Pieces: []int{1}, Targets: []int{1}})

	steps, ok := Solve(l, 0)
	assert.True(t, ok)
	assert.Empty(t, steps)

	_, ok = Hint(l, 0)
	assert.False(t, ok)
}

func TestSolveUnreachable(t *testing.T) {
	// The target sits in the middle of an open row; nothing can stop there.
	l := NewLevel(Spec{Width: 5, Height: 1, Pieces: []int{0}, Targets: []int{2}})

	_, ok := Solve(l, 0)
	assert.False(t, ok)
}

func TestSolveRespectsLimit(t *testing.T) {
	l := firstSteps()

	_, ok := Solve(l, 3)
	assert.False(t, ok)
}

func TestHintFromMidGame(t *testing.T) {
	l := NewLevel(Spec{
		Width:   5,
		Height:  5,
		Walls:   []Wall{{A: 14, B: 19}},
		Pieces:  []int{0},
		Targets: []int{12},
		Hands:   []int{12},
	})
	require.True(t, l.DoMove(0, Right))

	step, ok := Hint(l, 0)
	require.True(t, ok)
	assert.Equal(t, Step{Piece: 0, Dir: Down}, step)
}

func TestPositionsEncoding(t *testing.T) {
	in := []int{0, 255, 256, 1023}
	out := make([]int, len(in))
	decodePositions(encodePositions(in), out)
	assert.Equal(t, in, out)
}
