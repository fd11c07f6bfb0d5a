// Package gridpath provides cost-aware shortest-path search over an implicit
// 2D grid of cells, including the set of every cell on some optimal path and
// a binary-search wrapper for "first obstacle that disconnects".
//
// Overview:
//
//   - Cells are vec2.Vec2[int] values; edges are unit steps east, south, west
//     and north. Blocked cells come from any Obstacles implementation
//     (mapset.Set[Cell] works as is) and an optional inclusive Bounds box.
//   - A CostModel prices each step from the heading before and after it:
//     Plain charges 1 everywhere, TurnPenalty charges 1 straight ahead and
//     Penalty (DefaultTurnPenalty = 1001) for a change of heading.
//   - "No path" is a normal result (found == false), never an error.
//
// API reference:
//
//	ShortestPath(start, goal, obstacles, opts...) (cost int, found bool, err error)
//	AllShortestPaths(start, goal, obstacles, opts...) (Result, error)
//	Distances(start, obstacles, opts...) (map[Cell]int, error)
//	Threshold(n, reachable) (k int, err error)
//	FirstBlocking(start, goal, drops, opts...) (Cell, int, error)
//
// Options:
//
//   - WithBounds(min, max):    reject steps outside the inclusive box.
//   - WithCostModel(m):        Plain (default), TurnPenalty, or a CostFunc.
//   - WithStartDirection(d):   heading at start; default East.
//   - WithHeuristic(h):        ordering aid; default Manhattan. WithoutHeuristic() disables it.
//   - WithMaxCost(c):          states costing more than c are not explored.
//   - WithLogger(l):           logrus.FieldLogger for debug traces.
//
// Complexity:
//
//   - Time:  O(S log S), S = reachable states (cells, or 4×cells when heading matters).
//   - Space: O(S) for the per-call state map, predecessor lists and heap.
//
// Errors (sentinel):
//
//   - ErrOptionViolation, ErrBadBounds:             invalid configuration.
//   - ErrStartOutOfBounds, ErrGoalOutOfBounds:      endpoints outside bounds.
//   - ErrStartBlocked, ErrGoalBlocked:              endpoints inside obstacles.
//   - ErrNonPositiveCost:                           cost model returned a value below 1.
//   - ErrUnbounded:                                 Distances without bounds or cost cap.
//   - ErrBlockedAtStart, ErrNeverBlocked:           threshold range has no transition.
//
// Thread safety:
//
//   - Every call builds and discards its own heap and state map. Calls are
//     safe to run concurrently as long as the Obstacles value is not mutated.
package gridpath
