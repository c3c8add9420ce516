// Package covariance accumulates instantaneous and time-lagged second-order
// statistics over one or more trajectories. Accumulation is a running sum of
// raw moments, so data may arrive in a single pass, in chunks, or from
// independently collected trajectories with identical results up to
// floating-point ordering. Lag pairs are never formed across a trajectory
// boundary.
package covariance

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const defaultVarianceTol = 1e-12

// Option configures an Accumulator.
type Option func(*Accumulator)

// WithVarianceTolerance sets the threshold below which a feature's variance
// is reported as constant. Diagnostic only; accumulation never fails on
// constant features.
func WithVarianceTolerance(tol float64) Option {
	return func(a *Accumulator) { a.varTol = tol }
}

// Accumulator holds running raw-moment sums over (x_t, x_t+lag) pairs.
// It is owned by a single writer; callers needing concurrent submission must
// serialize externally.
type Accumulator struct {
	lag      int
	features int
	pairs    int
	varTol   float64

	sum0 []float64 // column sums of the instantaneous series
	sumT []float64 // column sums of the lagged series
	m00  *mat.Dense
	m0t  *mat.Dense
	mtt  *mat.Dense
}

// NewAccumulator creates an empty accumulator for the given lag time in
// whole steps.
func NewAccumulator(lag int, opts ...Option) (*Accumulator, error) {
	if lag < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLag, lag)
	}

	a := &Accumulator{
		lag:    lag,
		varTol: defaultVarianceTol,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Lag returns the lag time in steps.
func (a *Accumulator) Lag() int { return a.lag }

// Pairs returns the number of lag pairs accumulated so far.
func (a *Accumulator) Pairs() int { return a.pairs }

// Features returns the feature count, or zero before any data arrived.
func (a *Accumulator) Features() int { return a.features }

// AddTrajectory submits one trajectory (time x feature). The trajectory
// contributes rows-lag pairs; fewer than one pair is ErrInsufficientData.
func (a *Accumulator) AddTrajectory(x *mat.Dense) error {
	return a.AddTrajectories(x)
}

// AddTrajectories submits several independent trajectories in one call.
// Trajectories shorter than the lag contribute zero pairs without failing;
// the call fails with ErrInsufficientData only when no trajectory
// contributes a pair.
func (a *Accumulator) AddTrajectories(xs ...*mat.Dense) error {
	added := 0
	for _, x := range xs {
		rows, cols := x.Dims()
		n := rows - a.lag
		if n < 1 {
			continue
		}
		if err := a.checkFeatures(cols); err != nil {
			return err
		}

		x0 := x.Slice(0, n, 0, cols).(*mat.Dense)
		xt := x.Slice(a.lag, rows, 0, cols).(*mat.Dense)
		a.accumulate(x0, xt)
		added += n
	}

	if added == 0 {
		return fmt.Errorf("%w: no trajectory longer than lag %d", ErrInsufficientData, a.lag)
	}

	log.WithFields(log.Fields{
		"PAIRS":    added,
		"TOTAL":    a.pairs,
		"FEATURES": a.features,
	}).Debug("COVARIANCE: ACCUMULATED TRAJECTORIES")

	return nil
}

// AddPairs submits pre-paired instantaneous and lagged series of equal
// length, one pair per row.
func (a *Accumulator) AddPairs(instant, lagged *mat.Dense) error {
	ir, ic := instant.Dims()
	lr, lc := lagged.Dims()
	if ir != lr || ic != lc {
		return fmt.Errorf("%w: instant is %dx%d, lagged is %dx%d", ErrDimensionMismatch, ir, ic, lr, lc)
	}
	if ir < 1 {
		return fmt.Errorf("%w: empty pair submission", ErrInsufficientData)
	}
	if err := a.checkFeatures(ic); err != nil {
		return err
	}

	a.accumulate(instant, lagged)
	return nil
}

// Merge folds another accumulator's sums into this one. Both must share lag
// time and feature count; an empty side is a no-op on that side's terms.
func (a *Accumulator) Merge(other *Accumulator) error {
	if other.lag != a.lag {
		return fmt.Errorf("%w: merging lag %d into lag %d", ErrDimensionMismatch, other.lag, a.lag)
	}
	if other.pairs == 0 {
		return nil
	}
	if err := a.checkFeatures(other.features); err != nil {
		return err
	}

	a.pairs += other.pairs
	floats.Add(a.sum0, other.sum0)
	floats.Add(a.sumT, other.sumT)
	a.m00.Add(a.m00, other.m00)
	a.m0t.Add(a.m0t, other.m0t)
	a.mtt.Add(a.mtt, other.mtt)
	return nil
}

// checkFeatures fixes the feature count on first data and rejects later
// submissions that disagree.
func (a *Accumulator) checkFeatures(cols int) error {
	if a.features == 0 {
		a.features = cols
		a.sum0 = make([]float64, cols)
		a.sumT = make([]float64, cols)
		a.m00 = mat.NewDense(cols, cols, nil)
		a.m0t = mat.NewDense(cols, cols, nil)
		a.mtt = mat.NewDense(cols, cols, nil)
		return nil
	}
	if cols != a.features {
		return fmt.Errorf("%w: got %d features, accumulator holds %d", ErrDimensionMismatch, cols, a.features)
	}
	return nil
}

// accumulate adds the raw moments of one block of pairs. instant and lagged
// have identical shape and are already feature-checked.
func (a *Accumulator) accumulate(instant, lagged *mat.Dense) {
	rows, _ := instant.Dims()
	a.pairs += rows

	for i := 0; i < rows; i++ {
		floats.Add(a.sum0, instant.RawRowView(i))
		floats.Add(a.sumT, lagged.RawRowView(i))
	}

	var t mat.Dense
	t.Mul(instant.T(), instant)
	a.m00.Add(a.m00, &t)

	t.Reset()
	t.Mul(instant.T(), lagged)
	a.m0t.Add(a.m0t, &t)

	t.Reset()
	t.Mul(lagged.T(), lagged)
	a.mtt.Add(a.mtt, &t)
}

// Statistics freezes the current sums into an immutable Statistics value.
// The accumulator remains valid and may keep receiving data; later
// submissions do not affect previously returned statistics.
func (a *Accumulator) Statistics() (*Statistics, error) {
	if a.pairs == 0 {
		return nil, fmt.Errorf("%w: no pairs accumulated", ErrInsufficientData)
	}

	n := float64(a.pairs)
	f := a.features

	mean0 := make([]float64, f)
	meanT := make([]float64, f)
	for i := 0; i < f; i++ {
		mean0[i] = a.sum0[i] / n
		meanT[i] = a.sumT[i] / n
	}

	c00 := mat.NewSymDense(f, nil)
	ctt := mat.NewSymDense(f, nil)
	c0t := mat.NewDense(f, f, nil)
	for i := 0; i < f; i++ {
		for j := 0; j < f; j++ {
			c0t.Set(i, j, a.m0t.At(i, j)/n-mean0[i]*meanT[j])
			if j >= i {
				c00.SetSym(i, j, a.m00.At(i, j)/n-mean0[i]*mean0[j])
				ctt.SetSym(i, j, a.mtt.At(i, j)/n-meanT[i]*meanT[j])
			}
		}
	}

	var constant []int
	for i := 0; i < f; i++ {
		if c00.At(i, i) <= a.varTol && ctt.At(i, i) <= a.varTol {
			constant = append(constant, i)
		}
	}

	return &Statistics{
		features: f,
		lag:      a.lag,
		pairs:    a.pairs,
		mean0:    mean0,
		meanT:    meanT,
		c00:      c00,
		c0t:      c0t,
		ctt:      ctt,
		constant: constant,
	}, nil
}
