package covariance

import "gonum.org/v1/gonum/mat"

// Statistics is a frozen snapshot of accumulated covariance statistics.
// It is immutable after construction and safe for concurrent reads; matrix
// accessors return internal storage and must be treated as read-only.
type Statistics struct {
	features int
	lag      int
	pairs    int

	mean0 []float64
	meanT []float64
	c00   *mat.SymDense
	c0t   *mat.Dense
	ctt   *mat.SymDense

	symmetrized bool
	constant    []int
}

// Features returns the feature count.
func (s *Statistics) Features() int { return s.features }

// Lag returns the lag time in steps.
func (s *Statistics) Lag() int { return s.lag }

// Pairs returns the number of lag pairs behind these statistics.
func (s *Statistics) Pairs() int { return s.pairs }

// Symmetrized reports whether these statistics went through reversible
// symmetrization.
func (s *Statistics) Symmetrized() bool { return s.symmetrized }

// MeanZero returns the mean of the instantaneous series. Under reversible
// symmetrization this equals MeanLag.
func (s *Statistics) MeanZero() []float64 { return s.mean0 }

// MeanLag returns the mean of the lagged series.
func (s *Statistics) MeanLag() []float64 { return s.meanT }

// C00 returns the instantaneous covariance.
func (s *Statistics) C00() *mat.SymDense { return s.c00 }

// C0t returns the time-lagged cross-covariance.
func (s *Statistics) C0t() *mat.Dense { return s.c0t }

// Ctt returns the instantaneous covariance of the lagged series.
func (s *Statistics) Ctt() *mat.SymDense { return s.ctt }

// ConstantFeatures lists indices of features whose variance stayed below the
// accumulator's tolerance over all data seen. Diagnostic only.
func (s *Statistics) ConstantFeatures() []int { return s.constant }
