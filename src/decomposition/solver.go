package decomposition

import (
	"fmt"

	"github.com/LucaChot/koopman/src/covariance"
	"github.com/LucaChot/koopman/src/matrix"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// spectrum is the untruncated outcome of a solve: every computed value in
// descending absolute order, with left and right vectors as columns in the
// original feature basis. Reversible solves produce identical sides.
type spectrum struct {
	values []float64
	left   *mat.Dense
	right  *mat.Dense
}

// solveReversible whitens the symmetrized instantaneous covariance, builds
// the whitened operator K = W^T C0t W and solves its symmetric eigenproblem.
// Eigenvalues are real and lie in [-1, 1] up to round-off. Vectors are
// unwhitened back into the feature basis.
func solveReversible(s *covariance.Statistics, epsilon float64) (*spectrum, error) {
	w, err := matrix.Whitening(s.C00(), epsilon)
	if err != nil {
		return nil, fmt.Errorf("whitening instantaneous covariance: %w", err)
	}

	var k, kw mat.Dense
	k.Mul(w.T(), s.C0t())
	kw.Mul(&k, w)

	vals, vecs := matrix.EigDescAbs(matrix.Symmetrized(&kw))

	var u mat.Dense
	u.Mul(w, vecs)

	_, rank := w.Dims()
	log.WithFields(log.Fields{
		"RANK":     rank,
		"FEATURES": s.Features(),
	}).Debug("DECOMPOSITION: SOLVED REVERSIBLE EIGENPROBLEM")

	return &spectrum{values: vals, left: &u, right: &u}, nil
}

// solveNonReversible whitens the instantaneous and lagged covariances
// independently, then takes the singular value decomposition of the
// cross-whitened operator W0^T C0t Wt. Singular values are non-negative and
// the two vector sets are unwhitened independently.
func solveNonReversible(s *covariance.Statistics, epsilon float64) (*spectrum, error) {
	w0, err := matrix.Whitening(s.C00(), epsilon)
	if err != nil {
		return nil, fmt.Errorf("whitening instantaneous covariance: %w", err)
	}
	wt, err := matrix.Whitening(s.Ctt(), epsilon)
	if err != nil {
		return nil, fmt.Errorf("whitening lagged covariance: %w", err)
	}

	var k, kw mat.Dense
	k.Mul(w0.T(), s.C0t())
	kw.Mul(&k, wt)

	vals, uw, vw := matrix.SVDThin(&kw)

	var left, right mat.Dense
	left.Mul(w0, uw)
	right.Mul(wt, vw)

	log.WithFields(log.Fields{
		"VALUES":   len(vals),
		"FEATURES": s.Features(),
	}).Debug("DECOMPOSITION: SOLVED WHITENED SVD")

	return &spectrum{values: vals, left: &left, right: &right}, nil
}
