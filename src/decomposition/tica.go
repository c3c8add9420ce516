package decomposition

import (
	"github.com/LucaChot/koopman/src/covariance"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// TICA estimates slow coordinates assuming a time-reversible process:
// statistics are symmetrized and the whitened operator is solved as a real
// symmetric eigenproblem. The exchangeability assumption is never checked.
type TICA struct {
	lag   int
	cfg   settings
	model *Model
}

// NewTICA creates a reversible estimator for the given lag time in steps.
func NewTICA(lag int, opts ...Option) (*TICA, error) {
	if lag < 1 {
		return nil, covariance.ErrInvalidLag
	}
	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &TICA{lag: lag, cfg: s}, nil
}

// Fit accumulates the given trajectories at the estimator's lag and fits a
// model. The returned model replaces any previously fitted one.
func (t *TICA) Fit(trajs ...*mat.Dense) (*Model, error) {
	acc, err := covariance.NewAccumulator(t.lag)
	if err != nil {
		return nil, err
	}
	if err := acc.AddTrajectories(trajs...); err != nil {
		return nil, err
	}
	return t.FitFromAccumulator(acc)
}

// FitFromAccumulator fits from externally accumulated statistics, allowing
// chunked or distributed accumulation before the solve.
func (t *TICA) FitFromAccumulator(acc *covariance.Accumulator) (*Model, error) {
	stats, err := acc.Statistics()
	if err != nil {
		return nil, err
	}
	return t.FitFromStatistics(stats)
}

// FitFromStatistics symmetrizes raw statistics and solves the reversible
// eigenproblem. A solve failure leaves the previously fitted model in place.
func (t *TICA) FitFromStatistics(raw *covariance.Statistics) (*Model, error) {
	sym := covariance.Symmetrize(raw)

	spec, err := solveReversible(sym, t.cfg.epsilon)
	if err != nil {
		return nil, err
	}

	model := newModel(sym, spec, t.cfg.dim, t.cfg.scaling)
	t.model = model

	log.WithFields(log.Fields{
		"LAG":       t.lag,
		"DIMENSION": model.OutputDimension(),
		"SCALING":   t.cfg.scaling.String(),
	}).Debug("TICA: FITTED MODEL")

	return model, nil
}

// Model returns the most recently fitted model, or nil before any fit.
func (t *TICA) Model() *Model { return t.model }
