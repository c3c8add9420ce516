// Package decomposition estimates slow collective coordinates from
// time-lagged covariance statistics. TICA performs the reversible,
// symmetrized eigenproblem variant; VAMP the general singular value
// decomposition of the whitened cross-covariance operator.
package decomposition

import "fmt"

// DefaultEpsilon is the relative eigenvalue threshold below which covariance
// directions are truncated before whitening.
const DefaultEpsilon = 1e-6

type settings struct {
	dim     Dimension
	scaling Scaling
	epsilon float64
}

func defaultSettings() settings {
	return settings{
		dim:     FullRank(),
		scaling: ScalingNone,
		epsilon: DefaultEpsilon,
	}
}

// Option configures a TICA or VAMP estimator. Invalid configuration is
// rejected by the constructor, before any data is examined.
type Option func(*settings) error

// WithDimension retains exactly k components, clipped to the available rank.
func WithDimension(k int) Option {
	return func(s *settings) error {
		d, err := FixedDimension(k)
		if err != nil {
			return err
		}
		s.dim = d
		return nil
	}
}

// WithVarianceFraction retains the smallest prefix of components capturing
// the fraction f of total kinetic variance, f in (0, 1].
func WithVarianceFraction(f float64) Option {
	return func(s *settings) error {
		d, err := VarianceFraction(f)
		if err != nil {
			return err
		}
		s.dim = d
		return nil
	}
}

// WithScaling selects the output scaling convention.
func WithScaling(sc Scaling) Option {
	return func(s *settings) error {
		if !sc.valid() {
			return fmt.Errorf("%w: %d", ErrInvalidScaling, sc)
		}
		s.scaling = sc
		return nil
	}
}

// WithEpsilon sets the relative rank-truncation threshold for whitening.
func WithEpsilon(eps float64) Option {
	return func(s *settings) error {
		if eps < 0 {
			return fmt.Errorf("%w: got %v", ErrInvalidEpsilon, eps)
		}
		s.epsilon = eps
		return nil
	}
}

func applyOptions(opts []Option) (settings, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return settings{}, err
		}
	}
	return s, nil
}
