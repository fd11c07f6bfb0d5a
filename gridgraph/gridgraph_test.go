package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty, ragged or unmarked inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"EmptyRows", "", gridgraph.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", gridgraph.ErrEmptyGrid},
		{"EmptyCols", "\n#S", gridgraph.ErrEmptyGrid},
		{"NonRectangular", "#S.\n#E", gridgraph.ErrNonRectangular},
		{"MissingStart", "#.E", gridgraph.ErrMissingMarker},
		{"MissingEnd", "#S.", gridgraph.ErrMissingMarker},
		{"DuplicateStart", "SES", gridgraph.ErrDuplicateMarker},
		{"DuplicateEnd", "ESE", gridgraph.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}

// TestParse_Maze checks dimensions, markers and walls on a 5×3 maze.
func TestParse_Maze(t *testing.T) {
	input := "#####\n#S.E#\n#####\n"
	g, err := gridgraph.Parse(input)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 1}, g.Start)
	assert.Equal(t, gridgraph.Cell{X: 3, Y: 1}, g.End)
	assert.Equal(t, 12, g.Walls.Size())
	assert.False(t, g.Walls.Has(g.Start))
	assert.Equal(t, []gridgraph.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, g.Open())
}

// TestParse_CRLFAndMarkers accepts Windows line endings and custom runes.
func TestParse_CRLFAndMarkers(t *testing.T) {
	input := "XXXX\r\nXa.bX\r\n"
	_, err := gridgraph.Parse(input, gridgraph.WithMarkers('X', 'a', 'b'))
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	g, err := gridgraph.Parse("XXXX\r\nXabX\r\n", gridgraph.WithMarkers('X', 'a', 'b'))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 1}, g.Start)
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 1}, g.End)
}

// TestInBounds checks InBounds and IsOpen on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.Parse("S#.\n..E")
	require.NoError(t, err)

	valid := []gridgraph.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Cell{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}

	assert.False(t, g.IsOpen(gridgraph.Cell{X: 1, Y: 0}), "wall is not open")
	assert.False(t, g.IsOpen(gridgraph.Cell{X: 5, Y: 5}), "outside is not open")
	assert.True(t, g.IsOpen(gridgraph.Cell{X: 2, Y: 0}))

	lo, hi := g.Bounds()
	assert.Equal(t, gridgraph.Cell{}, lo)
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 1}, hi)
	assert.Equal(t, gridgraph.Cell{X: 3, Y: 2}, g.Size())
}

// TestIndexCoordinate round-trips every cell of a grid through Index.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.Parse("S...\n....\n...E")
	require.NoError(t, err)
	for idx := 0; idx < g.Width*g.Height; idx++ {
		c := g.Coordinate(idx)
		require.True(t, g.InBounds(c))
		require.Equal(t, idx, g.Index(c))
	}
	assert.Equal(t, 6, g.Index(gridgraph.Cell{X: 2, Y: 1}))
}

//----------------------------------------------------------------------------//
// ParseCoordinates Tests
//----------------------------------------------------------------------------//

func TestParseCoordinates(t *testing.T) {
	cells, err := gridgraph.ParseCoordinates("5,4\n4,2\n\n 6 , 1 \n")
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{X: 5, Y: 4}, {X: 4, Y: 2}, {X: 6, Y: 1}}, cells)

	for _, bad := range []string{"5;4", "a,1", "1,b", "3"} {
		_, err := gridgraph.ParseCoordinates("1,1\n" + bad)
		assert.ErrorIs(t, err, gridgraph.ErrBadCoordinate, "input %q", bad)
	}
}
