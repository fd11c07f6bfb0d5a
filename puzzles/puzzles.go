// Package puzzles wires the grid search packages to the three puzzle inputs
// they were built for: a reindeer maze priced with turn penalties, a memory
// space filled by falling bytes, and a race track with cheats.
package puzzles

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/gridpath"
	"github.com/katalvlaran/gridroute/racetrack"
)

var (
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("puzzles: unknown day")
	// ErrNoRoute indicates the goal cannot be reached at all.
	ErrNoRoute = errors.New("puzzles: goal is unreachable")
	// ErrTooFewDrops indicates fewer drops than requested have been listed.
	ErrTooFewDrops = errors.New("puzzles: not enough drops in input")
)

// Puzzle-sized defaults for the falling bytes memory space and race track.
const (
	MemorySize   = 70
	MemoryFallen = 1024
	MinSaving    = 100
	ShortCheat   = 2
	LongCheat    = 20
)

// Answer holds the printable results for both parts of a day.
type Answer struct {
	Part1 string
	Part2 string
}

// Solver computes both parts from raw input text.
type Solver func(input string, log logrus.FieldLogger) (Answer, error)

var solvers = map[int]Solver{
	16: solveReindeer,
	18: solveFalling,
	20: solveRace,
}

// Lookup returns the solver for day, or ErrUnknownDay.
func Lookup(day int) (Solver, error) {
	s, ok := solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days lists the registered days in ascending order.
func Days() []int {
	days := maps.Keys(solvers)
	slices.Sort(days)
	return days
}

// ReindeerRoutes parses a maze and runs the turn-penalty search from S
// (facing East) to E. It returns the parsed grid alongside the full result so
// callers can render the optimal tiles.
func ReindeerRoutes(input string, log logrus.FieldLogger) (*gridgraph.Grid, gridpath.Result, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, gridpath.Result{}, err
	}
	lo, hi := g.Bounds()
	opts := []gridpath.Option{
		gridpath.WithBounds(lo, hi),
		gridpath.WithCostModel(gridpath.TurnPenalty{Penalty: gridpath.DefaultTurnPenalty}),
		gridpath.WithStartDirection(gridpath.East),
	}
	if log != nil {
		opts = append(opts, gridpath.WithLogger(log))
	}

	res, err := gridpath.AllShortestPaths(g.Start, g.End, g.Walls, opts...)
	if err != nil {
		return nil, gridpath.Result{}, err
	}
	if !res.Found {
		return nil, gridpath.Result{}, ErrNoRoute
	}
	return g, res, nil
}

// ReindeerMaze returns the lowest score through the maze and the number of
// tiles lying on at least one best route.
func ReindeerMaze(input string) (cost, tiles int, err error) {
	_, res, err := ReindeerRoutes(input, nil)
	if err != nil {
		return 0, 0, err
	}
	return res.Cost, res.Cells.Size(), nil
}

// FallingBytes simulates drops onto the [0,size]² memory space. It returns
// the step count from the top-left to the bottom-right corner after the first
// fallen drops, and the first drop that cuts the corners apart.
func FallingBytes(input string, size, fallen int) (steps int, blocker gridpath.Cell, err error) {
	return fallingBytes(input, size, fallen, nil)
}

func fallingBytes(input string, size, fallen int, log logrus.FieldLogger) (int, gridpath.Cell, error) {
	drops, err := gridgraph.ParseCoordinates(input)
	if err != nil {
		return 0, gridpath.Cell{}, err
	}
	if fallen < 0 || fallen > len(drops) {
		return 0, gridpath.Cell{}, fmt.Errorf("%w: want %d, have %d", ErrTooFewDrops, fallen, len(drops))
	}

	start, goal := gridpath.Cell{}, gridpath.Cell{X: size, Y: size}
	opts := []gridpath.Option{gridpath.WithBounds(start, goal)}
	if log != nil {
		opts = append(opts, gridpath.WithLogger(log))
	}

	fell := mapset.New[gridpath.Cell]()
	for _, c := range drops[:fallen] {
		fell.Put(c)
	}
	steps, found, err := gridpath.ShortestPath(start, goal, fell, opts...)
	if err != nil {
		return 0, gridpath.Cell{}, err
	}
	if !found {
		return 0, gridpath.Cell{}, ErrNoRoute
	}

	blocker, _, err := gridpath.FirstBlocking(start, goal, drops, opts...)
	if err != nil {
		return 0, gridpath.Cell{}, err
	}
	return steps, blocker, nil
}

// RaceTrack counts cheats saving at least minSaving steps, for the short
// (2 step) and long (20 step) cheat rules.
func RaceTrack(input string, minSaving int) (short, long int, err error) {
	return raceTrack(input, minSaving, nil)
}

func raceTrack(input string, minSaving int, log logrus.FieldLogger) (int, int, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return 0, 0, err
	}
	tr, err := racetrack.New(g, log)
	if err != nil {
		return 0, 0, err
	}
	short, err := tr.Cheats(minSaving, ShortCheat)
	if err != nil {
		return 0, 0, err
	}
	long, err := tr.Cheats(minSaving, LongCheat)
	if err != nil {
		return 0, 0, err
	}
	return short, long, nil
}

func solveReindeer(input string, log logrus.FieldLogger) (Answer, error) {
	_, res, err := ReindeerRoutes(input, log)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Part1: strconv.Itoa(res.Cost), Part2: strconv.Itoa(res.Cells.Size())}, nil
}

func solveFalling(input string, log logrus.FieldLogger) (Answer, error) {
	steps, blocker, err := fallingBytes(input, MemorySize, MemoryFallen, log)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Part1: strconv.Itoa(steps), Part2: fmt.Sprintf("%d,%d", blocker.X, blocker.Y)}, nil
}

func solveRace(input string, log logrus.FieldLogger) (Answer, error) {
	short, long, err := raceTrack(input, MinSaving, log)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Part1: strconv.Itoa(short), Part2: strconv.Itoa(long)}, nil
}
