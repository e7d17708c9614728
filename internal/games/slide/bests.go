package slide

import (
	"sync"

	"github.com/vovakirdan/slide/internal/core"
)

// BestScores is the best-move collaborator a Game reports solves to.
type BestScores = core.BestScores

// MemoryBests keeps best move counts in memory.
// It is used when no database is available.
type MemoryBests struct {
	mu    sync.Mutex
	bests map[int]int
}

// NewMemoryBests creates an empty in-memory best table.
func NewMemoryBests() *MemoryBests {
	return &MemoryBests{bests: make(map[int]int)}
}

// Best returns the best move count for a level, or 0.
func (m *MemoryBests) Best(level int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bests[level]
}

// SetBest stores moves if it beats the current best.
func (m *MemoryBests) SetBest(level, moves int) {
	if moves <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.bests[level]; !ok || moves < cur {
		m.bests[level] = moves
	}
}

const (
	RatingPerfect = "perfect"
	RatingSolved  = "solved"
)

// Rating grades a solve against the level par.
// Levels without a par can only be solved.
func Rating(moves, par int) string {
	if par > 0 && moves <= par {
		return RatingPerfect
	}
	return RatingSolved
}
