package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	// Check that the file and its directories were created
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SetBest("slide", 1, 9)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	best, err := store.Best("slide", 1)
	require.NoError(t, err)
	assert.Equal(t, 9, best)
}

func TestSetBestKeepsLowest(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		moves   int
		changed bool
		want    int
	}{
		{moves: 12, changed: true, want: 12},
		{moves: 15, changed: false, want: 12},
		{moves: 12, changed: false, want: 12},
		{moves: 8, changed: true, want: 8},
		{moves: 0, changed: false, want: 8},
	}

	for _, tc := range tests {
		changed, err := store.SetBest("slide", 3, tc.moves)
		require.NoError(t, err)
		assert.Equal(t, tc.changed, changed, "moves %d", tc.moves)

		best, err := store.Best("slide", 3)
		require.NoError(t, err)
		assert.Equal(t, tc.want, best, "moves %d", tc.moves)
	}
}

func TestBestUnsolved(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("slide", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestAllBestsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct{ game, level, moves int }{{0, 2, 10}, {0, 1, 7}, {1, 1, 2}} {
		game := []string{"slide", "slide_hands"}[e.game]
		_, err := store.SetBest(game, e.level, e.moves)
		require.NoError(t, err)
	}

	bests, err := store.AllBests("slide")
	require.NoError(t, err)
	require.Len(t, bests, 2)
	assert.Equal(t, 1, bests[0].Level, "ordered by level")
	assert.Equal(t, 7, bests[0].Moves)
	assert.Equal(t, 2, bests[1].Level)
	assert.False(t, bests[0].UpdatedAt.IsZero())

	_, err = store.RecordSolve("slide", 1, 7)
	require.NoError(t, err)

	require.NoError(t, store.ClearBests("slide"))

	bests, err = store.AllBests("slide")
	require.NoError(t, err)
	assert.Empty(t, bests)
	solves, err := store.RecentSolves("slide", 0)
	require.NoError(t, err)
	assert.Empty(t, solves)

	// Other games are untouched
	other, err := store.AllBests("slide_hands")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestRecordSolve(t *testing.T) {
	store := openTestStore(t)

	first, err := store.RecordSolve("slide", 1, 9)
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	assert.NoError(t, err, "solve ids are uuids")

	second, err := store.RecordSolve("slide", 1, 7)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = store.RecordSolve("slide", 2, 10)
	require.NoError(t, err)

	solves, err := store.RecentSolves("slide", 2)
	require.NoError(t, err)
	require.Len(t, solves, 2)
	assert.Equal(t, 2, solves[0].Level, "newest first")
	assert.Equal(t, second, solves[1].ID)
	assert.False(t, solves[0].CreatedAt.IsZero())

	stats, err := store.GetGameStats("slide")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Solves)
	assert.Equal(t, 2, stats.LevelsSolved)
	assert.Equal(t, int64(26), stats.TotalMoves)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("slide")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Solves)
	assert.True(t, stats.LastPlayed.IsZero())
}

func TestGameBests(t *testing.T) {
	store := openTestStore(t)
	bests := store.Bests("slide")

	assert.Equal(t, 0, bests.Best(4))
	bests.SetBest(4, 20)
	bests.SetBest(4, 25)
	assert.Equal(t, 20, bests.Best(4))

	// Keyed by game
	assert.Equal(t, 0, store.Bests("slide_hands").Best(4))
}

func TestGameBestsReportsErrors(t *testing.T) {
	store := openTestStore(t)
	bests := store.Bests("slide")

	var reported []error
	bests.OnError = func(err error) { reported = append(reported, err) }

	require.NoError(t, store.Close())
	assert.Equal(t, 0, bests.Best(1))
	bests.SetBest(1, 3)
	assert.Len(t, reported, 2)
}
