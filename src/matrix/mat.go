package matrix

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrZeroRank reports that a covariance matrix has no eigenvalue above the
// relative truncation threshold, so whitening is impossible.
var ErrZeroRank = errors.New("matrix: zero effective rank after truncation")

/*
Function Structure
- Assertions
- Calculation
- Handle Subsequent Errors
*/

// Whitening computes W = V diag(l^-1/2) from the eigendecomposition of the
// symmetric positive semi-definite matrix a, keeping only eigenvalues above
// epsilon times the largest eigenvalue. The returned W has one column per
// retained eigenvalue and satisfies W^T a W = I on the retained subspace.
// Returns ErrZeroRank when no eigenvalue survives truncation.
func Whitening(a *mat.SymDense, epsilon float64) (*mat.Dense, error) {
	if a == nil {
		panic(fmt.Errorf("input matrix must not be nil"))
	}

	n := a.SymmetricDim()
	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return nil, fmt.Errorf("matrix: eigendecomposition failed")
	}

	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	/* Eigenvalues arrive in ascending order, the largest is last */
	max := vals[n-1]
	if max <= 0 {
		return nil, ErrZeroRank
	}
	cutoff := epsilon * max

	keep := make([]int, 0, n)
	for i, v := range vals {
		if v > cutoff {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, ErrZeroRank
	}

	w := mat.NewDense(n, len(keep), nil)
	for j, i := range keep {
		scale := 1.0 / math.Sqrt(vals[i])
		for r := 0; r < n; r++ {
			w.Set(r, j, vecs.At(r, i)*scale)
		}
	}

	return w, nil
}

// EigDescAbs solves the symmetric eigenproblem on a and returns eigenvalues
// with their eigenvectors as columns, ordered by descending absolute value.
// Ties keep the solver's iteration order.
func EigDescAbs(a *mat.SymDense) ([]float64, *mat.Dense) {
	if a == nil {
		panic(fmt.Errorf("input matrix must not be nil"))
	}

	n := a.SymmetricDim()
	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		panic(fmt.Errorf("eigendecomposition of symmetric matrix failed"))
	}

	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return math.Abs(vals[order[i]]) > math.Abs(vals[order[j]])
	})

	outVals := make([]float64, n)
	outVecs := mat.NewDense(n, n, nil)
	for j, i := range order {
		outVals[j] = vals[i]
		for r := 0; r < n; r++ {
			outVecs.Set(r, j, vecs.At(r, i))
		}
	}

	return outVals, outVecs
}

// SVDThin computes the thin singular value decomposition of b, returning the
// singular values in descending order together with the left and right
// singular vectors as columns.
func SVDThin(b *mat.Dense) ([]float64, *mat.Dense, *mat.Dense) {
	if b == nil {
		panic(fmt.Errorf("input matrix must not be nil"))
	}

	var svd mat.SVD
	if ok := svd.Factorize(b, mat.SVDThin); !ok {
		panic(fmt.Errorf("svd factorization failed"))
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return svd.Values(nil), &u, &v
}

// Symmetrized copies a into a SymDense as (a + a^T)/2, absorbing the
// round-off asymmetry left by chained products.
func Symmetrized(a *mat.Dense) *mat.SymDense {
	r, c := a.Dims()
	if r != c {
		panic(fmt.Errorf("input matrix must be square"))
	}

	s := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			s.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}
	return s
}
