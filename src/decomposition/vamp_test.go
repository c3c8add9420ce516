package decomposition

import (
	"math"
	"testing"

	"github.com/LucaChot/koopman/src/covariance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVAMPConsistencyWithTICA(t *testing.T) {
	// On symmetrized statistics the singular values of the whitened
	// cross-covariance coincide with the magnitudes of the reversible
	// eigenvalues.
	acc, err := covariance.NewAccumulator(hmmLag)
	require.NoError(t, err)
	require.NoError(t, acc.AddTrajectory(scenario.data))
	raw, err := acc.Statistics()
	require.NoError(t, err)
	sym := covariance.Symmetrize(raw)

	vamp, err := NewVAMP(hmmLag, WithDimension(2))
	require.NoError(t, err)
	vampModel, err := vamp.FitFromStatistics(sym)
	require.NoError(t, err)

	tica, err := NewTICA(hmmLag, WithDimension(2))
	require.NoError(t, err)
	ticaModel, err := tica.FitFromStatistics(raw)
	require.NoError(t, err)

	sv := vampModel.Values()
	ev := ticaModel.Values()
	require.Len(t, sv, len(ev))
	for i := range sv {
		assert.InDelta(t, math.Abs(ev[i]), sv[i], 1e-8)
	}

	ts1 := vampModel.Timescales()
	ts2 := ticaModel.Timescales()
	for i := range ts1 {
		assert.InDelta(t, ts2[i], ts1[i], 1e-4)
	}
}

func TestVAMPNonReversible(t *testing.T) {
	vamp, err := NewVAMP(hmmLag)
	require.NoError(t, err)

	model, err := vamp.Fit(scenario.data)
	require.NoError(t, err)

	stats := model.Statistics()
	assert.False(t, stats.Symmetrized())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, scenario.covRaw00.At(i, j), stats.C00().At(i, j), 1e-9)
			assert.InDelta(t, scenario.covRaw0t.At(i, j), stats.C0t().At(i, j), 1e-9)
		}
	}

	values := model.Values()
	require.NotEmpty(t, values)
	for i, v := range values {
		assert.GreaterOrEqual(t, v, 0.0)
		if i > 0 {
			assert.LessOrEqual(t, v, values[i-1])
		}
	}
}

func TestVAMPForwardBackwardShapes(t *testing.T) {
	vamp, err := NewVAMP(hmmLag, WithDimension(1))
	require.NoError(t, err)

	model, err := vamp.Fit(scenario.data)
	require.NoError(t, err)

	fwd := model.Transform(scenario.data)
	bwd := model.TransformBackward(scenario.data)

	fr, fc := fwd.Dims()
	br, bc := bwd.Dims()
	assert.Equal(t, hmmSamples, fr)
	assert.Equal(t, 1, fc)
	assert.Equal(t, hmmSamples, br)
	assert.Equal(t, 1, bc)
}

func TestVAMPKineticMapScaling(t *testing.T) {
	vamp, err := NewVAMP(hmmLag, WithScaling(ScalingKineticMap))
	require.NoError(t, err)

	model, err := vamp.Fit(scenario.data)
	require.NoError(t, err)

	vars := columnVariances(model.Transform(scenario.data))
	values := model.Values()
	for i, v := range vars {
		assert.InDelta(t, values[i]*values[i], v, 0.01)
	}
}

func TestVAMPFitReplacesModel(t *testing.T) {
	vamp, err := NewVAMP(hmmLag)
	require.NoError(t, err)

	model1, err := vamp.Fit(scenario.data)
	require.NoError(t, err)
	model2, err := vamp.Fit(scenario.data)
	require.NoError(t, err)

	assert.NotSame(t, model1, model2)
	assert.Same(t, model2, vamp.Model())
}
