package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridroute/gridgraph"
)

func TestRenderValues(t *testing.T) {
	values := map[gridgraph.Cell]int{
		{X: 0, Y: 0}: 1,
		{X: 2, Y: 1}: 7,
	}
	got := gridgraph.RenderValues(values, gridgraph.Cell{X: 3, Y: 2})
	assert.Equal(t, "1..\n..7\n", got)
}

func TestRenderSet(t *testing.T) {
	set := mapset.New[gridgraph.Cell]()
	set.Put(gridgraph.Cell{X: 1, Y: 0})
	set.Put(gridgraph.Cell{X: 0, Y: 1})
	assert.Equal(t, ".#\n#.\n", gridgraph.RenderSet(set, gridgraph.Cell{X: 2, Y: 2}))
}

func TestOverlay(t *testing.T) {
	g, err := gridgraph.Parse("#####\n#S.E#\n#####")
	require.NoError(t, err)

	path := mapset.New[gridgraph.Cell]()
	path.Put(g.Start)
	path.Put(g.End)

	assert.Equal(t, "#####\n#O.O#\n#####\n", g.Overlay(path, 'O'))
	assert.Equal(t, "#####\n#...#\n#####\n", g.Overlay(nil, 'O'))
}
