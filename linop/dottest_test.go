package linop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-linop/internal/testutil"
)

func TestDotTestEye(t *testing.T) {
	op, err := Eye[float64](3, 5)
	require.NoError(t, err)

	x := testutil.DeterministicNoise(1, 1, 5)
	y := testutil.DeterministicNoise(2, 1, 3)
	res, err := DotTest[float64](op, x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0, res, 1e-12)
}

func TestDotTestDetectsWrongAdjoint(t *testing.T) {
	op, err := New(2, 2, func(x []float64) ([]float64, error) {
		return []float64{x[1], 0}, nil
	}, func(y []float64) ([]float64, error) {
		return []float64{y[0], 0}, nil
	})
	require.NoError(t, err)

	res, err := DotTest[float64](op, []float64{0, 1}, []float64{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1, res, 1e-12)
}

func TestDotTestComplex(t *testing.T) {
	op, err := Diag([]complex128{2, 3})
	require.NoError(t, err)

	x := testutil.DeterministicComplexNoise(4, 1, 2)
	y := testutil.DeterministicComplexNoise(5, 1, 2)
	res, err := DotTest[complex128](op, x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0, res, 1e-12)
}

func TestDotTestNoAdjoint(t *testing.T) {
	op, err := New(1, 1, double, nil)
	require.NoError(t, err)
	_, err = DotTest[float64](op, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrNoAdjoint)
}
