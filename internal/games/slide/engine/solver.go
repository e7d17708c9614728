package engine

// Step is one move command: push a piece in a direction.
type Step struct {
	Piece int
	Dir   Direction
}

// DefaultSolveLimit bounds the number of positions Solve explores.
const DefaultSolveLimit = 2_000_000

// Solve searches breadth-first for the shortest sequence of steps that
// completes the level from its current position. The level itself is not
// modified. Returns false when no solution exists within limit explored
// positions (limit <= 0 uses DefaultSolveLimit).
func Solve(l *Level, limit int) ([]Step, bool) {
	if limit <= 0 {
		limit = DefaultSolveLimit
	}
	if l.Complete() {
		return []Step{}, true
	}

	work := l.scratch()
	startKey := encodePositions(l.pieces)
	parents := map[string]link{startKey: {}}
	queue := []string{startKey}

	for len(queue) > 0 && len(parents) <= limit {
		key := queue[0]
		queue = queue[1:]
		decodePositions(key, work.pieces)

		for piece := range work.pieces {
			for _, d := range Directions {
				dst, ok := work.ComputeMove(piece, d)
				if !ok {
					continue
				}

				src := work.pieces[piece]
				work.pieces[piece] = dst
				next := encodePositions(work.pieces)
				solved := work.Complete()
				work.pieces[piece] = src

				if _, seen := parents[next]; seen {
					continue
				}
				parents[next] = link{prev: key, step: Step{Piece: piece, Dir: d}}
				if solved {
					return unwind(parents, next, startKey), true
				}
				queue = append(queue, next)
			}
		}
	}
	return nil, false
}

// Hint returns the first step of a shortest solution from the current position.
func Hint(l *Level, limit int) (Step, bool) {
	steps, ok := Solve(l, limit)
	if !ok || len(steps) == 0 {
		return Step{}, false
	}
	return steps[0], true
}

// scratch returns a copy of the level sharing its immutable layout,
// with its own piece positions and no history.
func (l *Level) scratch() *Level {
	return &Level{
		grid:    l.grid,
		shape:   l.shape,
		walls:   l.walls,
		targets: l.targets,
		hands:   l.hands,
		handsAt: l.handsAt,
		par:     l.par,
		info:    l.info,
		initial: l.initial,
		pieces:  cloneInts(l.pieces),
	}
}

// link points a search position back to its predecessor.
type link struct {
	prev string
	step Step
}

// unwind rebuilds the step sequence leading from start to end.
func unwind(parents map[string]link, end, start string) []Step {
	var steps []Step
	for key := end; key != start; {
		l := parents[key]
		steps = append(steps, l.step)
		key = l.prev
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// encodePositions packs piece cells into a map key, two bytes per piece.
func encodePositions(pieces []int) string {
	buf := make([]byte, 2*len(pieces))
	for i, p := range pieces {
		buf[2*i] = byte(p >> 8)
		buf[2*i+1] = byte(p)
	}
	return string(buf)
}

func decodePositions(key string, dst []int) {
	for i := range dst {
		dst[i] = int(key[2*i])<<8 | int(key[2*i+1])
	}
}
