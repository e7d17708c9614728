package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
	Level   int // 1-based starting level, 0 for the first
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int  // 1-based current level
	Moves    int  // Moves made on the current level
	Complete bool // Whether the current level is complete
	GameOver bool // Whether the last level has been finished
	Paused   bool // Whether the game is paused
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventMoved EventKind = iota + 1
	EventUndone
	EventSolved
	EventLevelChanged
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventUndone:
		return "undone"
	case EventSolved:
		return "solved"
	case EventLevelChanged:
		return "level_changed"
	default:
		return "unknown"
	}
}

// Event is reported by a step so the platform can persist and count it.
type Event struct {
	Kind  EventKind
	Level int // 1-based level the event refers to
	Moves int // Move count after the event
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// BestScores records the fewest moves used to solve each level.
// Level numbers are 1-based; a best of 0 means no solve recorded.
type BestScores interface {
	Best(level int) int

	// SetBest stores moves unless an equal or better best already exists.
	SetBest(level, moves int)
}
