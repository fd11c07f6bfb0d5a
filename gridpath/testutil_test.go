package gridpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/gridpath"
)

// smallReindeerMaze has a turn-penalty optimum of 7036 over 45 tiles.
const smallReindeerMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

// largeReindeerMaze has a turn-penalty optimum of 11048 over 64 tiles.
const largeReindeerMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

// fallingDrops is the ordered obstacle list for the 7×7 falling-byte maze.
const fallingDrops = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0`

func mustParse(t testing.TB, input string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.Parse(input)
	require.NoError(t, err)
	return g
}

func mustDrops(t testing.TB) []gridpath.Cell {
	t.Helper()
	drops, err := gridgraph.ParseCoordinates(fallingDrops)
	require.NoError(t, err)
	require.Len(t, drops, 25)
	return drops
}

func setOf(cells ...gridpath.Cell) mapset.Set[gridpath.Cell] {
	s := mapset.New[gridpath.Cell]()
	for _, c := range cells {
		s.Put(c)
	}
	return s
}

func members(s mapset.Set[gridpath.Cell]) map[gridpath.Cell]bool {
	m := make(map[gridpath.Cell]bool, s.Size())
	s.Each(func(c gridpath.Cell) { m[c] = true })
	return m
}

func turnPenalty(g *gridgraph.Grid) []gridpath.Option {
	lo, hi := g.Bounds()
	return []gridpath.Option{
		gridpath.WithCostModel(gridpath.TurnPenalty{Penalty: gridpath.DefaultTurnPenalty}),
		gridpath.WithBounds(lo, hi),
	}
}
