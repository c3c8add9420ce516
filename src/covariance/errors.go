package covariance

import "errors"

var (
	// ErrInsufficientData reports a submission that contributes zero lag
	// pairs, or a statistics request on an empty accumulator.
	ErrInsufficientData = errors.New("covariance: insufficient data for lag pairs")

	// ErrInvalidLag rejects a non-positive lag time at construction.
	ErrInvalidLag = errors.New("covariance: lag time must be a positive number of steps")

	// ErrDimensionMismatch reports data whose feature count disagrees with
	// what the accumulator has already seen.
	ErrDimensionMismatch = errors.New("covariance: feature dimension mismatch")
)
