// Package gridgraph turns puzzle text into grid inputs for gridpath:
// character mazes with walls and start/end markers, and "x,y" coordinate
// lists. It also renders cell sets back to text.
package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Parse builds a Grid from a non-empty, rectangular block of text lines.
// Trailing blank lines and '\r' line endings are ignored.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, ErrMissingMarker or
// ErrDuplicateMarker if start or end does not appear exactly once.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(input string, opts ...ParseOption) (*Grid, error) {
	cfg := DefaultParseOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{Height: len(lines), Walls: mapset.New[Cell]()}
	var haveStart, haveEnd bool
	for y, line := range lines {
		row := []rune(line)
		if y == 0 {
			g.Width = len(row)
		} else if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), g.Width)
		}
		for x, r := range row {
			c := Cell{X: x, Y: y}
			switch r {
			case cfg.Wall:
				g.Walls.Put(c)
			case cfg.Start:
				if haveStart {
					return nil, fmt.Errorf("%w: start %q at %v", ErrDuplicateMarker, cfg.Start, c)
				}
				g.Start, haveStart = c, true
			case cfg.End:
				if haveEnd {
					return nil, fmt.Errorf("%w: end %q at %v", ErrDuplicateMarker, cfg.End, c)
				}
				g.End, haveEnd = c, true
			}
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: start %q", ErrMissingMarker, cfg.Start)
	}
	if !haveEnd {
		return nil, fmt.Errorf("%w: end %q", ErrMissingMarker, cfg.End)
	}

	return g, nil
}

// ParseCoordinates reads one "x,y" pair per line, in order. Blank lines are
// skipped; anything else malformed yields ErrBadCoordinate.
func ParseCoordinates(input string) ([]Cell, error) {
	var cells []Cell
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadCoordinate, i+1, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadCoordinate, i+1, line)
		}
		cells = append(cells, Cell{X: x, Y: y})
	}

	return cells, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Bounds returns the inclusive corner cells of the grid.
func (g *Grid) Bounds() (lo, hi Cell) {
	return Cell{}, Cell{X: g.Width - 1, Y: g.Height - 1}
}

// Size returns (Width, Height) as a Cell.
func (g *Grid) Size() Cell {
	return Cell{X: g.Width, Y: g.Height}
}

// IsOpen reports whether c is inside the grid and not a wall.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && !g.Walls.Has(c)
}

// Open returns every open cell in row-major order.
func (g *Grid) Open() []Cell {
	cells := make([]Cell, 0, g.Width*g.Height-g.Walls.Size())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := (Cell{X: x, Y: y}); !g.Walls.Has(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}
