package decomposition

import (
	"github.com/LucaChot/koopman/src/covariance"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// VAMP estimates slow coordinates without a reversibility assumption:
// instantaneous and lagged covariances are whitened independently and the
// cross-whitened operator is decomposed by SVD. Singular values are
// non-negative; left and right singular vectors generally differ.
type VAMP struct {
	lag   int
	cfg   settings
	model *Model
}

// NewVAMP creates a non-reversible estimator for the given lag time in steps.
func NewVAMP(lag int, opts ...Option) (*VAMP, error) {
	if lag < 1 {
		return nil, covariance.ErrInvalidLag
	}
	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &VAMP{lag: lag, cfg: s}, nil
}

// Fit accumulates the given trajectories at the estimator's lag and fits a
// model. The returned model replaces any previously fitted one.
func (v *VAMP) Fit(trajs ...*mat.Dense) (*Model, error) {
	acc, err := covariance.NewAccumulator(v.lag)
	if err != nil {
		return nil, err
	}
	if err := acc.AddTrajectories(trajs...); err != nil {
		return nil, err
	}
	return v.FitFromAccumulator(acc)
}

// FitFromAccumulator fits from externally accumulated statistics.
func (v *VAMP) FitFromAccumulator(acc *covariance.Accumulator) (*Model, error) {
	stats, err := acc.Statistics()
	if err != nil {
		return nil, err
	}
	return v.FitFromStatistics(stats)
}

// FitFromStatistics solves the whitened SVD on raw, unsymmetrized
// statistics. A solve failure leaves the previously fitted model in place.
func (v *VAMP) FitFromStatistics(raw *covariance.Statistics) (*Model, error) {
	spec, err := solveNonReversible(raw, v.cfg.epsilon)
	if err != nil {
		return nil, err
	}

	model := newModel(raw, spec, v.cfg.dim, v.cfg.scaling)
	v.model = model

	log.WithFields(log.Fields{
		"LAG":       v.lag,
		"DIMENSION": model.OutputDimension(),
		"SCALING":   v.cfg.scaling.String(),
	}).Debug("VAMP: FITTED MODEL")

	return model, nil
}

// Model returns the most recently fitted model, or nil before any fit.
func (v *VAMP) Model() *Model { return v.model }
