package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates reading a small maze.
// Scenario:
//
//   - '#' walls, 'S' start, 'E' end, '.' floor
//   - Expect a 6×4 grid with 18 wall cells
func ExampleParse() {
	g, err := gridgraph.Parse("######\n#S..E#\n#.##.#\n######")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("size %dx%d, walls %d, start %v, end %v\n",
		g.Width, g.Height, g.Walls.Size(), g.Start, g.End)
	fmt.Println("open region:", g.Reachable(g.Start).Size())

	// Output:
	// size 6x4, walls 18, start (1,1), end (4,1)
	// open region: 6
}

////////////////////////////////////////////////////////////////////////////////
// Example: ParseCoordinates
////////////////////////////////////////////////////////////////////////////////

// ExampleParseCoordinates renders a list of dropped cells on a 4×3 area.
func ExampleParseCoordinates() {
	drops, _ := gridgraph.ParseCoordinates("0,0\n3,1\n1,2")
	set := make(map[gridgraph.Cell]string, len(drops))
	for i, c := range drops {
		set[c] = fmt.Sprint(i)
	}
	fmt.Print(gridgraph.RenderValues(set, gridgraph.Cell{X: 4, Y: 3}))

	// Output:
	// 0...
	// ...1
	// .2..
}
