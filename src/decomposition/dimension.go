package decomposition

import "fmt"

type dimensionKind int

const (
	dimFull dimensionKind = iota
	dimFixed
	dimFraction
)

// Dimension is a resolved-at-fit-time dimension request. The zero value
// keeps every component surviving the solver's epsilon truncation.
type Dimension struct {
	kind dimensionKind
	k    int
	f    float64
}

// FullRank requests every component the solver retains.
func FullRank() Dimension { return Dimension{kind: dimFull} }

// FixedDimension requests exactly k components, silently clipped to the
// available rank at fit time. k must be positive.
func FixedDimension(k int) (Dimension, error) {
	if k <= 0 {
		return Dimension{}, fmt.Errorf("%w: count %d, must be positive", ErrInvalidDimension, k)
	}
	return Dimension{kind: dimFixed, k: k}, nil
}

// VarianceFraction requests the smallest prefix of components whose
// cumulative squared-value fraction reaches f. f must lie in (0, 1].
func VarianceFraction(f float64) (Dimension, error) {
	if f <= 0 || f > 1 {
		return Dimension{}, fmt.Errorf("%w: fraction %v, must be in (0, 1]", ErrInvalidDimension, f)
	}
	return Dimension{kind: dimFraction, f: f}, nil
}

// Resolve converts the request into a concrete component count against the
// full list of solver-computed values, ranked by descending absolute value.
func (d Dimension) Resolve(values []float64) int {
	n := len(values)
	switch d.kind {
	case dimFixed:
		if d.k < n {
			return d.k
		}
		return n
	case dimFraction:
		var total float64
		for _, v := range values {
			total += v * v
		}
		var cum float64
		for i, v := range values {
			cum += v * v
			if cum >= d.f*total {
				return i + 1
			}
		}
		return n
	default:
		return n
	}
}
