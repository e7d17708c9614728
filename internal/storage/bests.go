package storage

import "github.com/vovakirdan/slide/internal/core"

// GameBests adapts the store to core.BestScores for one game.
// Database errors go to OnError, if set, and read as "no best".
type GameBests struct {
	store   *Store
	gameID  string
	OnError func(error)
}

var _ core.BestScores = (*GameBests)(nil)

// Bests returns the best-move collaborator for a game.
func (s *Store) Bests(gameID string) *GameBests {
	return &GameBests{store: s, gameID: gameID}
}

// Best returns the stored best for a level, 0 if none.
func (b *GameBests) Best(level int) int {
	moves, err := b.store.Best(b.gameID, level)
	if err != nil {
		b.report(err)
		return 0
	}
	return moves
}

// SetBest stores moves if they beat the stored best.
func (b *GameBests) SetBest(level, moves int) {
	if _, err := b.store.SetBest(b.gameID, level, moves); err != nil {
		b.report(err)
	}
}

func (b *GameBests) report(err error) {
	if b.OnError != nil {
		b.OnError(err)
	}
}
