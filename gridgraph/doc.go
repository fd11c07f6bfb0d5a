// Package gridgraph treats puzzle text as a 2D grid of cells and prepares
// it for the gridpath search.
//
// What:
//
//   - Parse reads a rectangular character maze: walls ('#'), a start ('S')
//     and an end ('E'); every other rune is open floor.
//   - ParseCoordinates reads "x,y" lines, e.g. an ordered list of falling
//     obstacles.
//   - Reachable flood-fills the open region around a cell.
//   - RenderValues, RenderSet and Overlay print cell maps and sets as text.
//
// Why:
//
//   - Maze puzzles: feed Walls, Start, End and Bounds straight into gridpath.
//   - Debugging: overlay the optimal-path cell set on the maze.
//
// Complexity:
//
//   - Parse:          O(W×H), Memory: O(W×H).
//   - Reachable:      O(W×H), Memory: O(W×H).
//   - Render/Overlay: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingMarker: start or end marker absent.
//   - ErrDuplicateMarker: start or end marker repeated.
//   - ErrBadCoordinate: a coordinate line is not "x,y".
package gridgraph
