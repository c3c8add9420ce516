package decomposition

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/LucaChot/koopman/src/covariance"
	"github.com/LucaChot/koopman/src/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	hmmSamples = 40000
	hmmLag     = 10
)

type hmmScenario struct {
	data     *mat.Dense
	covRef00 *mat.Dense // symmetrized references
	covRef0t *mat.Dense
	meanRef  []float64
	covRaw00 *mat.Dense // non-reversible references
	covRaw0t *mat.Dense
}

// generateHMMScenario samples a two-state hidden chain with self-transition
// probability 0.99 and two well-separated Gaussian emission distributions,
// then computes the symmetrized and raw covariance references directly from
// the mean-removed data.
func generateHMMScenario() *hmmScenario {
	means := [2][2]float64{{-1, 1}, {1, -1}}
	widths := [2][2]float64{{0.3, 2}, {0.3, 2}}

	rng := rand.New(rand.NewPCG(123, 321))
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(7, 11)}

	data := mat.NewDense(hmmSamples, 2, nil)
	state := 0
	for t := 0; t < hmmSamples; t++ {
		for j := 0; j < 2; j++ {
			data.Set(t, j, means[state][j]+widths[state][j]*noise.Rand())
		}
		if rng.Float64() < 0.01 {
			state = 1 - state
		}
	}

	n := hmmSamples - hmmLag

	meanSym := make([]float64, 2)
	mean0 := make([]float64, 2)
	meanT := make([]float64, 2)
	for t := 0; t < n; t++ {
		for j := 0; j < 2; j++ {
			mean0[j] += data.At(t, j) / float64(n)
			meanT[j] += data.At(t+hmmLag, j) / float64(n)
		}
	}
	for j := 0; j < 2; j++ {
		meanSym[j] = 0.5 * (mean0[j] + meanT[j])
	}

	covRef00 := mat.NewDense(2, 2, nil)
	covRef0t := mat.NewDense(2, 2, nil)
	covRaw00 := mat.NewDense(2, 2, nil)
	covRaw0t := mat.NewDense(2, 2, nil)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var s00, stt, s0t, st0, r00, r0t float64
			for t := 0; t < n; t++ {
				x0i := data.At(t, i) - meanSym[i]
				x0j := data.At(t, j) - meanSym[j]
				xti := data.At(t+hmmLag, i) - meanSym[i]
				xtj := data.At(t+hmmLag, j) - meanSym[j]
				s00 += x0i * x0j
				stt += xti * xtj
				s0t += x0i * xtj
				st0 += xti * x0j

				r00 += (data.At(t, i) - mean0[i]) * (data.At(t, j) - mean0[j])
				r0t += (data.At(t, i) - mean0[i]) * (data.At(t+hmmLag, j) - meanT[j])
			}
			covRef00.Set(i, j, (s00+stt)/float64(2*n))
			covRef0t.Set(i, j, (s0t+st0)/float64(2*n))
			covRaw00.Set(i, j, r00/float64(n))
			covRaw0t.Set(i, j, r0t/float64(n))
		}
	}

	return &hmmScenario{
		data:     data,
		covRef00: covRef00,
		covRef0t: covRef0t,
		meanRef:  meanSym,
		covRaw00: covRaw00,
		covRaw0t: covRaw0t,
	}
}

var scenario = generateHMMScenario()

func columnVariances(y *mat.Dense) []float64 {
	_, cols := y.Dims()
	vars := make([]float64, cols)
	for j := 0; j < cols; j++ {
		vars[j] = stat.Variance(mat.Col(nil, j, y), nil)
	}
	return vars
}

func TestTICACovariancesMatchReference(t *testing.T) {
	tica, err := NewTICA(hmmLag, WithDimension(1))
	require.NoError(t, err)

	model, err := tica.Fit(scenario.data)
	require.NoError(t, err)

	stats := model.Statistics()
	require.True(t, stats.Symmetrized())
	for i := 0; i < 2; i++ {
		assert.InDelta(t, scenario.meanRef[i], stats.MeanZero()[i], 1e-10)
		for j := 0; j < 2; j++ {
			assert.InDelta(t, scenario.covRef00.At(i, j), stats.C00().At(i, j), 1e-9)
			assert.InDelta(t, scenario.covRef0t.At(i, j), stats.C0t().At(i, j), 1e-9)
		}
	}
}

func TestTICAUnscaledVariances(t *testing.T) {
	tica, err := NewTICA(hmmLag)
	require.NoError(t, err)

	model, err := tica.Fit(scenario.data)
	require.NoError(t, err)

	for _, v := range columnVariances(model.Transform(scenario.data)) {
		assert.InDelta(t, 1.0, v, 0.01)
	}
}

func TestTICAUnitVarianceScaling(t *testing.T) {
	tica, err := NewTICA(hmmLag, WithScaling(ScalingUnitVariance))
	require.NoError(t, err)

	model, err := tica.Fit(scenario.data)
	require.NoError(t, err)

	for _, v := range columnVariances(model.Transform(scenario.data)) {
		assert.InDelta(t, 1.0, v, 0.01)
	}
}

func TestTICAKineticMapScaling(t *testing.T) {
	tica, err := NewTICA(hmmLag, WithScaling(ScalingKineticMap))
	require.NoError(t, err)

	model, err := tica.Fit(scenario.data)
	require.NoError(t, err)

	vars := columnVariances(model.Transform(scenario.data))
	values := model.Values()
	require.Len(t, vars, len(values))
	for i, v := range vars {
		assert.InDelta(t, values[i]*values[i], v, 0.01)
	}
}

func TestTICACumulativeKineticVariance(t *testing.T) {
	tica, err := NewTICA(hmmLag, WithDimension(1))
	require.NoError(t, err)

	model, err := tica.Fit(scenario.data)
	require.NoError(t, err)

	cum := model.CumulativeKineticVariance()
	require.Len(t, cum, 2)
	for i := 1; i < len(cum); i++ {
		assert.GreaterOrEqual(t, cum[i], cum[i-1])
	}
	assert.InDelta(t, 1.0, cum[len(cum)-1], 1e-12)
}

func TestTICADimensionResolution(t *testing.T) {
	tica, err := NewTICA(hmmLag, WithDimension(1))
	require.NoError(t, err)
	model, err := tica.Fit(scenario.data)
	require.NoError(t, err)
	assert.Equal(t, 1, model.OutputDimension())

	// Requesting more than the available rank clips silently.
	tica, err = NewTICA(hmmLag, WithDimension(5))
	require.NoError(t, err)
	model, err = tica.Fit(scenario.data)
	require.NoError(t, err)
	assert.Equal(t, 2, model.OutputDimension())

	tica, err = NewTICA(hmmLag, WithVarianceFraction(1.0))
	require.NoError(t, err)
	model, err = tica.Fit(scenario.data)
	require.NoError(t, err)
	assert.Equal(t, 2, model.OutputDimension())

	tica, err = NewTICA(hmmLag, WithVarianceFraction(0.9))
	require.NoError(t, err)
	model, err = tica.Fit(scenario.data)
	require.NoError(t, err)
	assert.Equal(t, 1, model.OutputDimension())
}

func TestInvalidDimensionRequests(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, err := NewTICA(1, WithDimension(k))
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
	for _, f := range []float64{0.0, 1.1, -0.1} {
		_, err := NewTICA(1, WithVarianceFraction(f))
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
}

func TestInvalidLagAndEpsilon(t *testing.T) {
	_, err := NewTICA(0)
	assert.ErrorIs(t, err, covariance.ErrInvalidLag)

	_, err = NewTICA(1, WithEpsilon(-1e-9))
	assert.ErrorIs(t, err, ErrInvalidEpsilon)
}

func TestTICAFitReplacesModel(t *testing.T) {
	tica, err := NewTICA(hmmLag, WithDimension(1))
	require.NoError(t, err)

	model1, err := tica.Fit(scenario.data)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(99, 100))
	other := mat.NewDense(5000, 2, nil)
	for i := 0; i < 5000; i++ {
		other.Set(i, 0, rng.NormFloat64())
		other.Set(i, 1, rng.NormFloat64())
	}

	model2, err := tica.Fit(other)
	require.NoError(t, err)

	assert.NotSame(t, model1, model2)
	assert.Same(t, model2, tica.Model())
	assert.NotEqual(t, model1.Values(), model2.Values())
}

func TestTICAZeroRankAndRecovery(t *testing.T) {
	zeros := mat.NewDense(100, 10, nil)

	acc, err := covariance.NewAccumulator(1)
	require.NoError(t, err)
	require.NoError(t, acc.AddTrajectory(zeros))

	tica, err := NewTICA(1)
	require.NoError(t, err)

	_, err = tica.FitFromAccumulator(acc)
	assert.ErrorIs(t, err, matrix.ErrZeroRank)
	assert.Nil(t, tica.Model())

	// A later submission with variance across the union of data recovers.
	ones := mat.NewDense(100, 10, nil)
	for i := 0; i < 100; i++ {
		for j := 0; j < 10; j++ {
			ones.Set(i, j, 1)
		}
	}
	require.NoError(t, acc.AddTrajectory(ones))

	model, err := tica.FitFromAccumulator(acc)
	require.NoError(t, err)

	y := model.Transform(zeros)
	rows, cols := y.Dims()
	assert.Equal(t, 100, rows)
	assert.Equal(t, model.OutputDimension(), cols)
}

func TestTICATimescales(t *testing.T) {
	tica, err := NewTICA(hmmLag, WithDimension(1))
	require.NoError(t, err)

	model, err := tica.Fit(scenario.data)
	require.NoError(t, err)

	ts := model.Timescales()
	require.Len(t, ts, 1)
	assert.False(t, math.IsInf(ts[0], 1))
	assert.Greater(t, ts[0], 0.0)
}
