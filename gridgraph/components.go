package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridroute/vec2"
)

// Reachable returns every open cell connected to from by orthogonal steps,
// including from itself. A wall or out-of-bounds from yields an empty set.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Reachable(from Cell) mapset.Set[Cell] {
	region := mapset.New[Cell]()
	if !g.IsOpen(from) {
		return region
	}
	seen := make([]bool, g.Width*g.Height)
	seen[g.Index(from)] = true
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		region.Put(u)
		for _, d := range vec2.Dirs[int]() {
			v := u.Add(d)
			if !g.IsOpen(v) {
				continue
			}
			if vi := g.Index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return region
}
