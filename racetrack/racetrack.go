// Package racetrack counts "cheats" on a grid race track: a single jump of
// at most maxJump orthogonal steps that may pass through walls, from one open
// cell to another, taken at most once per run.
//
// A cheat from a to b costs the Manhattan distance m between them. Its saving
// is best - (dStart[a] + m + dEnd[b]) where dStart and dEnd are plain step
// distances from the start and to the end. Cheats are identified by their
// (a, b) endpoints. The track need not be a single corridor.
package racetrack

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/gridpath"
)

var (
	// ErrNoTrack indicates the end cannot be reached from the start without cheating.
	ErrNoTrack = errors.New("racetrack: end is unreachable from start")
	// ErrBadJump indicates a negative cheat length.
	ErrBadJump = errors.New("racetrack: cheat length must be non-negative")
)

// Track holds the distance fields of a parsed race track.
type Track struct {
	fromStart map[gridpath.Cell]int
	toEnd     map[gridpath.Cell]int
	best      int
}

// New computes the distance fields for g. Returns ErrNoTrack if the end is
// unreachable, or any gridpath precondition error.
func New(g *gridgraph.Grid, log logrus.FieldLogger) (*Track, error) {
	lo, hi := g.Bounds()
	opts := []gridpath.Option{gridpath.WithBounds(lo, hi)}
	if log != nil {
		opts = append(opts, gridpath.WithLogger(log))
	}

	fromStart, err := gridpath.Distances(g.Start, g.Walls, opts...)
	if err != nil {
		return nil, fmt.Errorf("racetrack: distances from start: %w", err)
	}
	best, ok := fromStart[g.End]
	if !ok {
		return nil, ErrNoTrack
	}
	toEnd, err := gridpath.Distances(g.End, g.Walls, opts...)
	if err != nil {
		return nil, fmt.Errorf("racetrack: distances to end: %w", err)
	}

	return &Track{fromStart: fromStart, toEnd: toEnd, best: best}, nil
}

// Best returns the honest (cheat-free) step count from start to end.
func (t *Track) Best() int { return t.best }

// Cheats returns how many distinct cheats of length at most maxJump save at
// least minSaving steps. minSaving below 1 still only counts cheats that
// save something.
//
// Complexity: O(C·J²) where C is the number of open cells reachable from the
// start and J is maxJump.
func (t *Track) Cheats(minSaving, maxJump int) (int, error) {
	if maxJump < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadJump, maxJump)
	}
	minSaving = max(minSaving, 1)
	limit := t.best - minSaving

	count := 0
	for from, ds := range t.fromStart {
		if ds > limit {
			continue
		}
		for dy := -maxJump; dy <= maxJump; dy++ {
			span := maxJump - abs(dy)
			for dx := -span; dx <= span; dx++ {
				to := from.Add(gridpath.Cell{X: dx, Y: dy})
				de, ok := t.toEnd[to]
				if !ok {
					continue
				}
				if ds+abs(dx)+abs(dy)+de <= limit {
					count++
				}
			}
		}
	}

	return count, nil
}

// Cheats is a shorthand for New followed by (*Track).Cheats, without logging.
func Cheats(g *gridgraph.Grid, minSaving, maxJump int) (int, error) {
	t, err := New(g, nil)
	if err != nil {
		return 0, err
	}
	return t.Cheats(minSaving, maxJump)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
