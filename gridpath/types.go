// Package gridpath defines the cell, direction and cost-model types,
// configuration options and sentinel errors for grid shortest-path search.
package gridpath

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridroute/vec2"
)

// Sentinel errors returned by the search functions.
var (
	// ErrOptionViolation indicates that an invalid Option value was supplied.
	ErrOptionViolation = errors.New("gridpath: invalid option supplied")

	// ErrBadBounds indicates bounds whose minimum exceeds their maximum on some axis.
	ErrBadBounds = errors.New("gridpath: bounds minimum exceeds maximum")

	// ErrStartOutOfBounds indicates the start cell lies outside the configured bounds.
	ErrStartOutOfBounds = errors.New("gridpath: start cell out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the configured bounds.
	ErrGoalOutOfBounds = errors.New("gridpath: goal cell out of bounds")

	// ErrStartBlocked indicates the start cell is a member of the obstacle set.
	ErrStartBlocked = errors.New("gridpath: start cell is an obstacle")

	// ErrGoalBlocked indicates the goal cell is a member of the obstacle set.
	ErrGoalBlocked = errors.New("gridpath: goal cell is an obstacle")

	// ErrNonPositiveCost indicates the cost model produced a step cost below 1.
	ErrNonPositiveCost = errors.New("gridpath: step cost must be positive")

	// ErrUnbounded indicates a goal-less search with neither bounds nor a cost cap.
	ErrUnbounded = errors.New("gridpath: search space is unbounded")

	// ErrBlockedAtStart indicates the goal is unreachable before any obstacle is added.
	ErrBlockedAtStart = errors.New("gridpath: goal unreachable with no obstacles added")

	// ErrNeverBlocked indicates the goal stays reachable with every obstacle added.
	ErrNeverBlocked = errors.New("gridpath: goal still reachable with all obstacles added")
)

// Cell is a grid coordinate.
type Cell = vec2.Vec2[int]

// Obstacles is the read-only set of blocked cells consulted by a search.
// mapset.Set[Cell] satisfies it.
type Obstacles interface {
	Has(c Cell) bool
}

// Bounds is an inclusive rectangle of cells.
type Bounds struct {
	Min, Max Cell
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Cell) bool {
	return c.InBounds(b.Min, b.Max)
}

// Direction is one of the four unit steps on the grid.
type Direction uint8

const (
	East Direction = iota
	South
	West
	North

	// noDirection marks states whose cost model ignores heading.
	noDirection
)

var directions = [4]Direction{East, South, West, North}

// Vec returns the unit vector for d; the zero vector for an invalid value.
func (d Direction) Vec() Cell {
	if d >= noDirection {
		return Cell{}
	}
	return vec2.Dirs[int]()[d]
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	default:
		return "none"
	}
}

// CostModel prices a single step given the heading before and after it.
// Costs must be at least 1.
type CostModel interface {
	StepCost(from, to Direction) int
}

// directionless is implemented by cost models whose price never depends on
// heading, which lets the search track one state per cell.
type directionless interface {
	ignoresDirection()
}

// Plain charges 1 for every step.
type Plain struct{}

// StepCost implements CostModel.
func (Plain) StepCost(_, _ Direction) int { return 1 }

func (Plain) ignoresDirection() {}

// DefaultTurnPenalty is the cost of a step that changes heading in TurnPenalty.
const DefaultTurnPenalty = 1001

// TurnPenalty charges 1 for a straight step and Penalty for a step that
// changes heading (the turn and the move are priced together).
type TurnPenalty struct {
	Penalty int
}

// StepCost implements CostModel.
func (m TurnPenalty) StepCost(from, to Direction) int {
	if from == to {
		return 1
	}
	return m.Penalty
}

// CostFunc adapts an ordinary function to CostModel.
type CostFunc func(from, to Direction) int

// StepCost implements CostModel.
func (f CostFunc) StepCost(from, to Direction) int { return f(from, to) }

// Heuristic estimates the remaining cost from a cell to the goal. It must
// never overestimate and must be consistent, or optimality is lost.
type Heuristic func(from, goal Cell) int

// Manhattan is the default heuristic. It is consistent for every cost model
// whose step costs are at least 1.
func Manhattan(from, goal Cell) int {
	return from.ManhattanTo(goal)
}

func zeroHeuristic(_, _ Cell) int { return 0 }

// Result is the outcome of AllShortestPaths.
//
// Cost     – minimal cost from start to goal (0 when not Found).
// Found    – whether the goal was reached.
// Cells    – every cell lying on at least one minimal-cost path.
// Paths    – number of distinct minimal-cost paths (saturates at math.MaxInt).
// Expanded – number of search states expanded.
type Result struct {
	Cost     int
	Found    bool
	Cells    mapset.Set[Cell]
	Paths    int
	Expanded int
}

// Options configures a search.
//
// Bounds         – optional inclusive rectangle; steps outside are rejected.
// CostModel      – step pricing; default Plain.
// StartDirection – heading at the start cell; default East.
// Heuristic      – ordering aid; default Manhattan.
// MaxCost        – states costing more are not explored; default math.MaxInt.
// Logger         – receives debug traces; default discards.
type Options struct {
	Bounds         *Bounds
	CostModel      CostModel
	StartDirection Direction
	Heuristic      Heuristic
	MaxCost        int
	Logger         logrus.FieldLogger

	// err records the first invalid option and is surfaced by the search.
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

var discard = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		CostModel:      Plain{},
		StartDirection: East,
		Heuristic:      Manhattan,
		MaxCost:        math.MaxInt,
		Logger:         discard,
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithBounds restricts the search to the inclusive rectangle [lo, hi].
// lo exceeding hi on either axis is reported as ErrBadBounds.
func WithBounds(lo, hi Cell) Option {
	return func(o *Options) {
		if lo.X > hi.X || lo.Y > hi.Y {
			o.fail(fmt.Errorf("%w: min %v, max %v", ErrBadBounds, lo, hi))
			return
		}
		o.Bounds = &Bounds{Min: lo, Max: hi}
	}
}

// WithCostModel selects the step pricing policy.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if m == nil {
			o.fail(fmt.Errorf("%w: nil cost model", ErrOptionViolation))
			return
		}
		o.CostModel = m
	}
}

// WithStartDirection sets the heading at the start cell. It only matters for
// direction-sensitive cost models.
func WithStartDirection(d Direction) Option {
	return func(o *Options) {
		if d >= noDirection {
			o.fail(fmt.Errorf("%w: start direction %d", ErrOptionViolation, d))
			return
		}
		o.StartDirection = d
	}
}

// WithHeuristic replaces the ordering heuristic. A nil h disables it.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			h = zeroHeuristic
		}
		o.Heuristic = h
	}
}

// WithoutHeuristic orders the frontier by accumulated cost alone.
func WithoutHeuristic() Option {
	return WithHeuristic(nil)
}

// WithMaxCost stops exploration of states whose cost would exceed c.
// Negative values are reported as ErrOptionViolation.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.fail(fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c))
			return
		}
		o.MaxCost = c
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
