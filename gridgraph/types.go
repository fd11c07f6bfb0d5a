// Package gridgraph defines core types and parse options
// for the gridgraph package of github.com/katalvlaran/gridroute.
package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridroute/vec2"
)

// Cell is a grid coordinate: X is the column, Y the row (row 0 on top).
type Cell = vec2.Vec2[int]

// ParseOptions selects the runes recognized by Parse.
type ParseOptions struct {
	// Wall marks a blocked cell.
	Wall rune
	// Start marks the single start cell (open).
	Start rune
	// End marks the single end cell (open).
	End rune
}

// ParseOption represents a functional option for Parse.
type ParseOption func(*ParseOptions)

// DefaultParseOptions returns Wall='#', Start='S', End='E'.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Wall:  '#',
		Start: 'S',
		End:   'E',
	}
}

// WithMarkers overrides the wall, start and end runes.
func WithMarkers(wall, start, end rune) ParseOption {
	return func(o *ParseOptions) {
		o.Wall, o.Start, o.End = wall, start, end
	}
}

// Grid is a parsed character maze. It is not mutated after Parse.
// Width and Height define dimensions; every in-bounds cell that is not in
// Walls is open. Start and End are the marker positions.
type Grid struct {
	Width, Height int
	Walls         mapset.Set[Cell]
	Start, End    Cell
}
