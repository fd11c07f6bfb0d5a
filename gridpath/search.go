// Package gridpath implements cost-aware shortest-path search on an implicit
// 2D grid, with enumeration of every cell that lies on some optimal path.
//
// Cells are graph nodes and edges are unit steps in the four compass
// directions. A CostModel prices each step from the heading before and after
// it, so turn penalties are expressed without a separate algorithm.
//
// Notes on implementation choices:
//
//   - The frontier is a min-heap ordered by cost plus a consistent heuristic
//     (Manhattan by default), ties broken by insertion order.
//   - We use a "lazy" decrease-key strategy: improved costs are pushed again
//     and stale entries are ignored when popped.
//   - Optimal routes are recorded as a predecessor DAG over (cell, heading)
//     states instead of per-entry path copies.
//   - After the first goal pop the loop keeps draining entries until their
//     priority exceeds the best goal cost, so every equal-cost route is seen.
package gridpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// ShortestPath returns the minimal cost of moving from start to goal without
// entering an obstacle or leaving the configured bounds.
//
// found is false (with a nil error) when no path exists; that is a normal
// outcome. err is non-nil only for invalid options or violated preconditions:
// ErrBadBounds, ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrStartBlocked,
// ErrGoalBlocked, ErrOptionViolation, ErrNonPositiveCost.
//
// Without bounds the obstacles must enclose the reachable area, otherwise an
// unreachable goal is never detected.
//
// Complexity: O(S log S) where S is the number of reachable states
// (cells, or cells×4 for direction-sensitive cost models).
func ShortestPath(start, goal Cell, obstacles Obstacles, opts ...Option) (cost int, found bool, err error) {
	cfg := buildOptions(opts)
	if err = validate(&cfg, start, goal, obstacles); err != nil {
		return 0, false, err
	}
	r := newRunner(cfg, obstacles, false)
	r.goal, r.hasGoal = goal, true
	if err = r.run(start); err != nil {
		return 0, false, err
	}
	r.trace(start, 0)
	if len(r.goals) == 0 {
		return 0, false, nil
	}

	return r.best, true, nil
}

// AllShortestPaths returns the minimal cost from start to goal together with
// every cell that lies on at least one path achieving that cost. Start and
// goal are always members of Result.Cells when the goal is found.
//
// Errors follow ShortestPath; an unreachable goal yields Found == false.
func AllShortestPaths(start, goal Cell, obstacles Obstacles, opts ...Option) (Result, error) {
	cfg := buildOptions(opts)
	if err := validate(&cfg, start, goal, obstacles); err != nil {
		return Result{}, err
	}
	r := newRunner(cfg, obstacles, true)
	r.goal, r.hasGoal = goal, true
	if err := r.run(start); err != nil {
		return Result{}, err
	}

	res := Result{Cells: mapset.New[Cell](), Expanded: r.expanded}
	if len(r.goals) > 0 {
		res.Found = true
		res.Cost = r.best
		res.Cells, res.Paths = r.collect()
	}
	r.trace(start, res.Paths)

	return res, nil
}

// Distances returns the minimal cost from start to every reachable cell.
// Because there is no goal to stop at, either WithBounds or WithMaxCost must
// be given (ErrUnbounded otherwise). The heuristic is not used.
func Distances(start Cell, obstacles Obstacles, opts ...Option) (map[Cell]int, error) {
	cfg := buildOptions(opts)
	if err := validate(&cfg, start, start, obstacles); err != nil {
		return nil, err
	}
	if cfg.Bounds == nil && cfg.MaxCost == math.MaxInt {
		return nil, ErrUnbounded
	}
	cfg.Heuristic = zeroHeuristic
	r := newRunner(cfg, obstacles, false)
	if err := r.run(start); err != nil {
		return nil, err
	}

	dist := make(map[Cell]int, len(r.nodes))
	for st, n := range r.nodes {
		if d, ok := dist[st.cell]; !ok || n.cost < d {
			dist[st.cell] = n.cost
		}
	}
	cfg.Logger.WithFields(logrus.Fields{
		"start":    start,
		"cells":    len(dist),
		"expanded": r.expanded,
	}).Debug("gridpath: distances computed")

	return dist, nil
}

// validate surfaces option errors first, then the input preconditions.
func validate(cfg *Options, start, goal Cell, obstacles Obstacles) error {
	if cfg.err != nil {
		return cfg.err
	}
	if b := cfg.Bounds; b != nil {
		if !b.Contains(start) {
			return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
		}
		if !b.Contains(goal) {
			return fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
		}
	}
	if obstacles != nil {
		if obstacles.Has(start) {
			return fmt.Errorf("%w: %v", ErrStartBlocked, start)
		}
		if obstacles.Has(goal) {
			return fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
		}
	}

	return nil
}

// node is the per-state bookkeeping kept for one search call.
type node struct {
	cost     int
	preds    []state // predecessors reaching this state at cost
	expanded bool
}

// runner holds the mutable state for a single search execution.
type runner struct {
	opts        Options
	obstacles   Obstacles
	directional bool // false when the cost model ignores heading
	allPaths    bool // keep equal-cost predecessors and drain to the cutoff

	goal    Cell
	hasGoal bool

	nodes    map[state]*node
	pq       stateHeap
	seq      int
	best     int     // best goal cost seen; math.MaxInt until the goal pops
	goals    []state // goal states popped at best
	expanded int
}

func newRunner(cfg Options, obstacles Obstacles, allPaths bool) *runner {
	_, flat := cfg.CostModel.(directionless)
	return &runner{
		opts:        cfg,
		obstacles:   obstacles,
		directional: !flat,
		allPaths:    allPaths,
		nodes:       make(map[state]*node),
		best:        math.MaxInt,
	}
}

func (r *runner) heading(d Direction) Direction {
	if r.directional {
		return d
	}
	return noDirection
}

func (r *runner) push(st state, cost int) {
	priority := cost
	if r.hasGoal {
		priority += r.opts.Heuristic(st.cell, r.goal)
	}
	r.seq++
	heap.Push(&r.pq, &stateItem{st: st, cost: cost, priority: priority, seq: r.seq})
}

// run seeds the frontier with start and processes it to termination.
func (r *runner) run(start Cell) error {
	st := state{cell: start, dir: r.heading(r.opts.StartDirection)}
	r.nodes[st] = &node{cost: 0}
	heap.Init(&r.pq)
	r.push(st, 0)

	return r.process()
}

// process is the main loop. It ends when the frontier is empty, when the
// next priority exceeds the best goal cost, or (scalar queries) at the first
// goal pop.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		if item.priority > r.best {
			break
		}
		n := r.nodes[item.st]
		if n.expanded || item.cost > n.cost {
			continue
		}
		n.expanded = true
		r.expanded++

		if r.hasGoal && item.st.cell == r.goal {
			if item.cost < r.best {
				r.best = item.cost
				r.goals = r.goals[:0]
			}
			if item.cost == r.best {
				r.goals = append(r.goals, item.st)
			}
			if !r.allPaths {
				return nil
			}
			continue
		}

		if err := r.relax(item.st, n.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax examines the four neighbors of from and records improved or
// equal-cost arrivals.
func (r *runner) relax(from state, cost int) error {
	b := r.opts.Bounds
	for _, d := range directions {
		next := from.cell.Add(d.Vec())
		if b != nil && !b.Contains(next) {
			continue
		}
		if r.obstacles != nil && r.obstacles.Has(next) {
			continue
		}

		step := r.opts.CostModel.StepCost(from.dir, d)
		if step < 1 {
			return fmt.Errorf("%w: %v→%v (%s to %s) cost %d", ErrNonPositiveCost, from.cell, next, from.dir, d, step)
		}
		newCost := cost + step
		if newCost > r.opts.MaxCost {
			continue
		}

		to := state{cell: next, dir: r.heading(d)}
		n, seen := r.nodes[to]
		switch {
		case !seen:
			n = &node{cost: newCost}
			r.nodes[to] = n
		case newCost < n.cost:
			n.cost = newCost
			n.preds = n.preds[:0]
		case newCost == n.cost && r.allPaths:
			n.preds = append(n.preds, from)
			continue
		default:
			continue
		}
		if r.allPaths {
			n.preds = append(n.preds, from)
		}
		r.push(to, newCost)
	}

	return nil
}

// collect walks the predecessor DAG backwards from every optimal goal state,
// returning the visited cells and the number of distinct optimal paths.
func (r *runner) collect() (mapset.Set[Cell], int) {
	cells := mapset.New[Cell]()
	seen := make(map[state]bool, len(r.nodes))
	stack := append([]state(nil), r.goals...)
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[st] {
			continue
		}
		seen[st] = true
		cells.Put(st.cell)
		stack = append(stack, r.nodes[st].preds...)
	}

	memo := make(map[state]int, len(seen))
	paths := 0
	for _, g := range r.goals {
		paths = addSaturating(paths, r.countPaths(g, memo))
	}

	return cells, paths
}

// countPaths returns the number of optimal paths from the start to st.
// Step costs are positive, so predecessors always cost strictly less and
// the recursion terminates.
func (r *runner) countPaths(st state, memo map[state]int) int {
	if c, ok := memo[st]; ok {
		return c
	}
	preds := r.nodes[st].preds
	if len(preds) == 0 {
		memo[st] = 1
		return 1
	}
	total := 0
	for _, p := range preds {
		total = addSaturating(total, r.countPaths(p, memo))
	}
	memo[st] = total

	return total
}

func addSaturating(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func (r *runner) trace(start Cell, paths int) {
	fields := logrus.Fields{
		"start":    start,
		"goal":     r.goal,
		"found":    len(r.goals) > 0,
		"expanded": r.expanded,
	}
	if len(r.goals) > 0 {
		fields["cost"] = r.best
	}
	if r.allPaths {
		fields["paths"] = paths
	}
	r.opts.Logger.WithFields(fields).Debug("gridpath: search finished")
}
