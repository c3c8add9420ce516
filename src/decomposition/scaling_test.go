package decomposition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScaling(t *testing.T) {
	cases := map[string]Scaling{
		"":              ScalingNone,
		"none":          ScalingNone,
		"km":            ScalingKineticMap,
		"kinetic map":   ScalingKineticMap,
		"unit variance": ScalingUnitVariance,
	}
	for name, want := range cases {
		got, err := ParseScaling(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseScaling("commute map")
	assert.ErrorIs(t, err, ErrInvalidScaling)
}

func TestDimensionResolve(t *testing.T) {
	values := []float64{0.9, 0.5, 0.1}

	d, err := FixedDimension(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Resolve(values))

	d, err = FixedDimension(10)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Resolve(values))

	// 0.81 / 1.07 is below 0.8, two components reach it.
	d, err = VarianceFraction(0.8)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Resolve(values))

	d, err = VarianceFraction(1.0)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Resolve(values))

	assert.Equal(t, 3, FullRank().Resolve(values))
}
