package gridgraph

import (
	"fmt"
	"strings"
)

// CellSet is anything that can answer membership for a cell.
// mapset.Set[Cell] satisfies it.
type CellSet interface {
	Has(c Cell) bool
}

// RenderValues draws a size.X×size.Y block where each cell present in values
// is printed with fmt's default format and every other cell as '.'.
func RenderValues[V any](values map[Cell]V, size Cell) string {
	var sb strings.Builder
	sb.Grow((size.X + 1) * size.Y)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if v, ok := values[Cell{X: x, Y: y}]; ok {
				fmt.Fprint(&sb, v)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderSet draws members of set as '#' and everything else as '.'.
func RenderSet(set CellSet, size Cell) string {
	var sb strings.Builder
	sb.Grow((size.X + 1) * size.Y)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if set.Has(Cell{X: x, Y: y}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Overlay draws the grid with walls as '#', members of path as mark and
// every other open cell as '.'.
func (g *Grid) Overlay(path CellSet, mark rune) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			switch {
			case g.Walls.Has(c):
				sb.WriteByte('#')
			case path != nil && path.Has(c):
				sb.WriteRune(mark)
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
