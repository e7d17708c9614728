// Package slide implements the sliding-block puzzle as a platform game:
// a campaign controller over engine levels with best-move tracking.
package slide

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/games/slide/engine"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
	"github.com/vovakirdan/slide/internal/registry"
)

// Game plays through the levels of one campaign.
type Game struct {
	id       string
	title    string
	campaign *levels.Campaign
	bests    BestScores

	level    *engine.Level
	number   int          // Current level (1-indexed)
	solved   map[int]bool // Levels solved during this session
	complete bool         // Current level solved, further moves rejected
	gameOver bool
	paused   bool

	hint       *engine.Step
	message    string
	solveLimit int
	loads      int // Incremented whenever a level is (re)loaded

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

var (
	classicCampaign = sync.OnceValue(func() *levels.Campaign { return levels.MustBuiltin("classic") })
	handsCampaign   = sync.OnceValue(func() *levels.Campaign { return levels.MustBuiltin("hands") })
)

func init() {
	registry.Register("slide", func() registry.Game {
		return FromCampaign(classicCampaign())
	})
	registry.Register("slide_hands", func() registry.Game {
		return FromCampaign(handsCampaign())
	})
}

// New creates a game over the campaign. A nil bests keeps bests in memory.
func New(id, title string, c *levels.Campaign, bests BestScores) *Game {
	if bests == nil {
		bests = NewMemoryBests()
	}
	return &Game{
		id:         id,
		title:      title,
		campaign:   c,
		bests:      bests,
		solved:     make(map[int]bool),
		solveLimit: engine.DefaultSolveLimit,
	}
}

// FromCampaign creates a game named after the campaign.
func FromCampaign(c *levels.Campaign) *Game {
	return New(CampaignGameID(c.ID()), "Slide: "+c.Title(), c, nil)
}

// CampaignGameID returns the registry ID used for a campaign.
// The classic campaign is the plain "slide" game.
func CampaignGameID(campaignID string) string {
	if campaignID == "classic" {
		return "slide"
	}
	return "slide_" + campaignID
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Campaign returns the campaign being played.
func (g *Game) Campaign() *levels.Campaign { return g.campaign }

// SetBests replaces the best-move collaborator, e.g. with a database-backed one.
func (g *Game) SetBests(b BestScores) {
	if b == nil {
		b = NewMemoryBests()
	}
	g.bests = b
}

// SetSolveLimit bounds the search used for hints.
func (g *Game) SetSolveLimit(limit int) {
	g.solveLimit = limit
}

// Reset starts the campaign at cfg.Level, or at the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.solved = make(map[int]bool)
	g.gameOver = false
	g.paused = false

	start := cfg.Level
	if start < 1 || start > g.campaign.Count() {
		start = 1
	}
	g.loadLevel(start)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to new screen dimensions without touching progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// loadLevel builds a fresh engine level for a 1-based number.
func (g *Game) loadLevel(n int) {
	l, ok := g.campaign.NewLevel(n)
	if !ok {
		return
	}
	g.level = l
	g.number = n
	g.loads++
	g.complete = l.Complete()
	g.hint = nil
	g.message = ""
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	if g.level == nil {
		return
	}
	minW, minH := minScreenSize(g.level)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.level == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	loads, moves, wasComplete := g.loads, g.level.MoveCount(), g.complete

	switch {
	case g.gameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		}
	case in.Has(core.ActionRestart):
		g.RestartLevel()
	case in.Has(core.ActionUndo):
		g.Undo()
	case in.Has(core.ActionNextPiece):
		g.level.NextSelection(false)
		g.hint = nil
	case in.Has(core.ActionPrevPiece):
		g.level.NextSelection(true)
		g.hint = nil
	case in.Has(core.ActionNextLevel), in.Has(core.ActionConfirm) && g.complete:
		g.NextLevel()
	case in.Has(core.ActionPrevLevel):
		g.GoToLevel(g.number - 1)
	case in.Has(core.ActionHint):
		g.ShowHint()
	default:
		if dir, ok := directionFor(in); ok {
			g.MovePiece(g.level.Selection(), dir)
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.events(loads, moves, wasComplete),
	}
}

// events reports what changed relative to the state before a step.
func (g *Game) events(loads, moves int, wasComplete bool) []core.Event {
	if g.loads != loads {
		return []core.Event{{Kind: core.EventLevelChanged, Level: g.number}}
	}

	now := g.level.MoveCount()
	var events []core.Event
	switch {
	case now > moves:
		events = append(events, core.Event{Kind: core.EventMoved, Level: g.number, Moves: now})
	case now < moves:
		events = append(events, core.Event{Kind: core.EventUndone, Level: g.number, Moves: now})
	}
	if g.complete && !wasComplete {
		events = append(events, core.Event{Kind: core.EventSolved, Level: g.number, Moves: now})
	}
	return events
}

func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return engine.Up, false
}

// MovePiece slides a piece. Rejected once the level is complete.
func (g *Game) MovePiece(piece int, dir engine.Direction) bool {
	if g.level == nil || g.complete || g.gameOver {
		return false
	}
	if !g.level.DoMove(piece, dir) {
		return false
	}

	g.hint = nil
	g.message = ""
	g.checkSolved()
	return true
}

// checkSolved records a solve the first time the level becomes complete.
func (g *Game) checkSolved() {
	if g.complete || !g.level.Complete() {
		return
	}

	moves := g.level.MoveCount()
	g.complete = true
	g.solved[g.number] = true
	g.bests.SetBest(g.number, moves)

	if g.number >= g.campaign.Count() {
		g.gameOver = true
	}
}

// Undo takes back the last move, reopening a completed level.
func (g *Game) Undo() bool {
	if g.level == nil || g.gameOver {
		return false
	}
	if _, ok := g.level.UndoMove(); !ok {
		return false
	}

	g.complete = g.level.Complete()
	g.hint = nil
	g.message = ""
	return true
}

// RestartLevel puts the current level back to its initial position.
func (g *Game) RestartLevel() {
	if g.level == nil {
		return
	}
	g.level.Reset()
	g.loads++
	g.complete = g.level.Complete()
	g.hint = nil
	g.message = ""
}

// NextLevel advances once the current level is complete or was solved before.
func (g *Game) NextLevel() bool {
	if !g.complete && !g.solved[g.number] && g.bests.Best(g.number) == 0 {
		g.message = "Solve this level first"
		return false
	}
	return g.GoToLevel(g.number + 1)
}

// GoToLevel loads a 1-based level, discarding the current one.
func (g *Game) GoToLevel(n int) bool {
	if n < 1 || n > g.campaign.Count() {
		return false
	}
	g.gameOver = false
	g.paused = false
	g.loadLevel(n)
	return true
}

// ShowHint selects the piece of the next move of a shortest solution.
func (g *Game) ShowHint() bool {
	if g.level == nil || g.complete {
		return false
	}

	step, ok := engine.Hint(g.level, g.solveLimit)
	if !ok {
		g.hint = nil
		g.message = "No solution from here, try undo"
		return false
	}

	g.level.Select(step.Piece)
	g.hint = &step
	g.message = fmt.Sprintf("Hint: move piece %d %s", step.Piece+1, step.Dir)
	return true
}

// CurrentHint returns the hint shown for the current position, if any.
func (g *Game) CurrentHint() (engine.Step, bool) {
	if g.hint == nil {
		return engine.Step{}, false
	}
	return *g.hint, true
}

// Level returns the engine level being played.
func (g *Game) Level() *engine.Level { return g.level }

// LevelNumber returns the 1-based current level.
func (g *Game) LevelNumber() int { return g.number }

// LevelCount returns the number of levels in the campaign.
func (g *Game) LevelCount() int { return g.campaign.Count() }

// LevelName returns the display name of the current level.
func (g *Game) LevelName() string {
	names := g.campaign.Names()
	if g.number < 1 || g.number > len(names) {
		return ""
	}
	return names[g.number-1]
}

// Best returns the best move count for the current level, 0 if unsolved.
func (g *Game) Best() int { return g.bests.Best(g.number) }

// Rate rates a solve of a 1-based level against its par.
func (g *Game) Rate(level, moves int) string {
	d, ok := g.campaign.Level(level)
	if !ok {
		return RatingSolved
	}
	return Rating(moves, d.MovePar())
}

// Solved reports whether a level was solved in this session.
func (g *Game) Solved(n int) bool { return g.solved[n] }

// Message returns the transient status line.
func (g *Game) Message() string { return g.message }

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Level:    g.number,
		Complete: g.complete,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
	if g.level != nil {
		state.Moves = g.level.MoveCount()
	}
	return state
}
