package slide

// StateType names the phase the game is in.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateSolved      StateType = "solved"
	StateGameOver    StateType = "game_over"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game state for replay and determinism tests.
type Snapshot struct {
	Game      string
	Level     int // 1-indexed
	Moves     int
	Pieces    []int
	Selection int
	Best      int
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.gameOver:
		state = StateGameOver
	case g.complete:
		state = StateSolved
	}

	snap := Snapshot{
		Game:  g.id,
		Level: g.number,
		Best:  g.Best(),
		State: state,
	}
	if g.level != nil {
		snap.Moves = g.level.MoveCount()
		snap.Pieces = g.level.Pieces()
		snap.Selection = g.level.Selection()
	}
	return snap
}
