package decomposition

import (
	"fmt"
	"math"

	"github.com/LucaChot/koopman/src/covariance"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Model is the immutable result of a fit: the retained, rescaled components
// together with the statistics they were computed from. Models are safe for
// concurrent reads and are never mutated after construction.
type Model struct {
	stats   *covariance.Statistics
	scaling Scaling

	allValues []float64 // every solver-computed value, descending |v|
	values    []float64 // retained values
	left      *mat.Dense
	right     *mat.Dense
}

// newModel truncates the spectrum per the dimension request and applies the
// scaling convention. Construction is all-or-nothing; a failed fit never
// produces a partial model.
func newModel(stats *covariance.Statistics, spec *spectrum, dim Dimension, scaling Scaling) *Model {
	d := dim.Resolve(spec.values)
	f := stats.Features()

	reversible := spec.left == spec.right

	left := mat.DenseCopyOf(spec.left.Slice(0, f, 0, d))
	right := left
	if !reversible {
		right = mat.DenseCopyOf(spec.right.Slice(0, f, 0, d))
	}

	values := append([]float64(nil), spec.values[:d]...)

	switch scaling {
	case ScalingKineticMap:
		scaleColumns(left, values)
		if !reversible {
			scaleColumns(right, values)
		}
	case ScalingUnitVariance:
		normalizeColumns(left, stats.C00())
		if !reversible {
			normalizeColumns(right, stats.Ctt())
		}
	}

	return &Model{
		stats:     stats,
		scaling:   scaling,
		allValues: append([]float64(nil), spec.values...),
		values:    values,
		left:      left,
		right:     right,
	}
}

// scaleColumns multiplies column i by values[i].
func scaleColumns(m *mat.Dense, values []float64) {
	r, _ := m.Dims()
	for j, v := range values {
		for i := 0; i < r; i++ {
			m.Set(i, j, m.At(i, j)*v)
		}
	}
}

// normalizeColumns rescales each column u so that u^T c u = 1, making the
// transformed training data unit variance per coordinate.
func normalizeColumns(m *mat.Dense, c *mat.SymDense) {
	r, cols := m.Dims()
	for j := 0; j < cols; j++ {
		u := m.ColView(j)
		norm := math.Sqrt(mat.Inner(u, c, u))
		if norm == 0 {
			continue
		}
		for i := 0; i < r; i++ {
			m.Set(i, j, m.At(i, j)/norm)
		}
	}
}

// OutputDimension returns the number of retained components.
func (m *Model) OutputDimension() int { return len(m.values) }

// Values returns the retained eigenvalues or singular values, ranked by
// descending absolute value.
func (m *Model) Values() []float64 {
	return append([]float64(nil), m.values...)
}

// Scaling returns the output convention this model was built with.
func (m *Model) Scaling() Scaling { return m.scaling }

// Statistics returns the covariance statistics the model was fitted from,
// as consumed by the solver (symmetrized for a reversible fit).
func (m *Model) Statistics() *covariance.Statistics { return m.stats }

// CumulativeKineticVariance returns, for every solver-computed component,
// the fraction of total squared spectral value captured by the components up
// to and including it. The sequence is non-decreasing; its last entry is 1
// up to round-off when epsilon truncation removed nothing.
func (m *Model) CumulativeKineticVariance() []float64 {
	squares := make([]float64, len(m.allValues))
	for i, v := range m.allValues {
		squares[i] = v * v
	}
	total := floats.Sum(squares)

	cum := make([]float64, len(squares))
	floats.CumSum(cum, squares)
	if total > 0 {
		floats.Scale(1/total, cum)
	}
	return cum
}

// Timescales returns the characteristic timescale -lag/ln|v| of each
// retained component, in the time unit of the lag. Values within round-off
// of magnitude one (or beyond) report +Inf; a vanishing value reports NaN.
// For a non-reversible fit the singular values play the role of |v|.
func (m *Model) Timescales() []float64 {
	lag := float64(m.stats.Lag())
	ts := make([]float64, len(m.values))
	for i, v := range m.values {
		av := math.Abs(v)
		switch {
		case av >= 1:
			ts[i] = math.Inf(1)
		case av == 0:
			ts[i] = math.NaN()
		default:
			ts[i] = -lag / math.Log(av)
		}
	}
	return ts
}

// Transform projects data onto the retained components: the mean of the
// instantaneous training series is removed and rows are mapped through the
// left vectors. For a reversible model left and right coincide.
func (m *Model) Transform(x *mat.Dense) *mat.Dense {
	return m.project(x, m.left, m.stats.MeanZero())
}

// TransformBackward projects data through the right vectors after removing
// the lagged-series mean, yielding the backward observables of a
// non-reversible model.
func (m *Model) TransformBackward(x *mat.Dense) *mat.Dense {
	return m.project(x, m.right, m.stats.MeanLag())
}

func (m *Model) project(x *mat.Dense, vecs *mat.Dense, mean []float64) *mat.Dense {
	rows, cols := x.Dims()
	if cols != m.stats.Features() {
		panic(fmt.Errorf("transform input has %d features, model expects %d", cols, m.stats.Features()))
	}

	centered := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		floats.SubTo(centered.RawRowView(i), x.RawRowView(i), mean)
	}

	var y mat.Dense
	y.Mul(centered, vecs)
	return &y
}
