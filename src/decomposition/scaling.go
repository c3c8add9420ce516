package decomposition

import "fmt"

// Scaling selects the output convention applied to retained components at
// model construction. It cannot be re-applied afterwards.
type Scaling int

const (
	// ScalingNone leaves vectors and values as computed; transformed
	// training coordinates then have unit variance in the whitened basis.
	ScalingNone Scaling = iota

	// ScalingKineticMap scales each retained vector by its value, so the
	// variance of a transformed training coordinate equals value squared.
	ScalingKineticMap

	// ScalingUnitVariance normalizes each retained vector against the
	// training covariance so transforming the training data yields exactly
	// unit variance per coordinate. The guarantee holds for the training
	// data only; held-out data with different statistics will not
	// generally reproduce it.
	ScalingUnitVariance
)

func (s Scaling) String() string {
	switch s {
	case ScalingNone:
		return "none"
	case ScalingKineticMap:
		return "km"
	case ScalingUnitVariance:
		return "unit variance"
	default:
		return "unknown"
	}
}

func (s Scaling) valid() bool {
	return s == ScalingNone || s == ScalingKineticMap || s == ScalingUnitVariance
}

// ParseScaling selects a scaling mode by name. "km" and "kinetic map" are
// interchangeable for the kinetic map convention.
func ParseScaling(name string) (Scaling, error) {
	switch name {
	case "", "none":
		return ScalingNone, nil
	case "km", "kinetic map":
		return ScalingKineticMap, nil
	case "unit variance":
		return ScalingUnitVariance, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidScaling, name)
}
