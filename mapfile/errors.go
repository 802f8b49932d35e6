package mapfile

import "errors"

// Sentinel errors surfaced by Load; all are fatal at startup per the
// propagation policy for data-driven boundary failures.
var (
	// ErrEmptyMap indicates a map file with no rows.
	ErrEmptyMap = errors.New("mapfile: map has no rows")
	// ErrRaggedRow indicates a row with a different column count than row 0.
	ErrRaggedRow = errors.New("mapfile: row has a different column count than row 0")
	// ErrUnknownSymbol indicates a cell token that isn't a road pair, a
	// source/destination/light designator, or a recognised direction.
	ErrUnknownSymbol = errors.New("mapfile: unrecognized symbol")
	// ErrBadGroup indicates a source/destination/light token whose group
	// suffix isn't a valid unsigned integer.
	ErrBadGroup = errors.New("mapfile: bad group number")
)
