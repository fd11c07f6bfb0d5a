package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrMissingMarker indicates the start or end marker does not appear.
	ErrMissingMarker = errors.New("gridgraph: marker not found")
	// ErrDuplicateMarker indicates the start or end marker appears more than once.
	ErrDuplicateMarker = errors.New("gridgraph: marker appears more than once")
	// ErrBadCoordinate indicates a coordinate line that is not "x,y".
	ErrBadCoordinate = errors.New("gridgraph: malformed coordinate")
)
