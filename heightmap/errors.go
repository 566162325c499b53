package heightmap

import "errors"

var (
	// ErrEmptyMap indicates a heightmap with no rows or no columns.
	ErrEmptyMap = errors.New("heightmap: map must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrNilSource indicates New was called without a noise source.
	ErrNilSource = errors.New("heightmap: source is nil")
	// ErrBadScale indicates a non-positive or non-finite sampling scale.
	ErrBadScale = errors.New("heightmap: scale must be positive and finite")
	// ErrBadOffset indicates a non-finite OffsetX, OffsetY or Z.
	ErrBadOffset = errors.New("heightmap: offsets and z must be finite")
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("heightmap: workers must be >= 1")
)
