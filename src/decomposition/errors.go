package decomposition

import "errors"

var (
	// ErrInvalidDimension rejects a dimension request outside its valid
	// range at construction, before any data is touched.
	ErrInvalidDimension = errors.New("decomposition: invalid dimension request")

	// ErrInvalidEpsilon rejects a negative rank-truncation threshold.
	ErrInvalidEpsilon = errors.New("decomposition: epsilon must be non-negative")

	// ErrInvalidScaling rejects an unknown scaling mode.
	ErrInvalidScaling = errors.New("decomposition: unknown scaling mode")
)
