package city

import "errors"

// Sentinel errors for city construction.
var (
	// ErrUTurn indicates a Road whose entry and exit directions are
	// opposite, which spec forbids as a U-turn within one tile.
	ErrUTurn = errors.New("city: road entry and exit directions must not be opposite (no U-turn)")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("city: width and height must be positive")
	// ErrCellOutOfRange indicates a road or group references a tile
	// outside [0, width) x [0, height).
	ErrCellOutOfRange = errors.New("city: cell coordinates out of range")
	// ErrSparseGroups indicates a source/destination/light group numbering
	// has a gap: group ids must be dense, 0..max.
	ErrSparseGroups = errors.New("city: group ids must be dense (0..max, no gaps)")
	// ErrEmptyDestinationGroup indicates a destination group referenced by
	// a vehicle has no member nodes.
	ErrEmptyDestinationGroup = errors.New("city: destination group must be non-empty")
)
