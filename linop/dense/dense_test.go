package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-linop/linop"
	"github.com/cwbudde/algo-linop/linop/axis"
	"github.com/cwbudde/algo-linop/linop/conv"
	"github.com/cwbudde/algo-linop/linop/fourier"
	"github.com/cwbudde/algo-linop/linop/selection"
)

// requireTransposePair checks that the materialized adjoint equals the
// transpose of the materialized operator.
func requireTransposePair(t *testing.T, op linop.Operator[float64]) {
	t.Helper()
	a, err := Of(op)
	require.NoError(t, err)
	at, err := AdjointOf(op)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(a.T(), at, 1e-12), "adjoint is not the transpose:\nA =\n%v\nA* =\n%v",
		mat.Formatted(a), mat.Formatted(at))
}

func TestOfDiag(t *testing.T) {
	op, err := linop.Diag([]float64{1, 2, 3})
	require.NoError(t, err)

	m, err := Of(op)
	require.NoError(t, err)
	want := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
	})
	assert.True(t, mat.Equal(m, want))
}

func TestOfDiff(t *testing.T) {
	op, err := axis.Diff[float64](linop.Shape{3}, -1)
	require.NoError(t, err)

	m, err := Of(op)
	require.NoError(t, err)
	want := mat.NewDense(2, 3, []float64{
		-1, 1, 0,
		0, -1, 1,
	})
	assert.True(t, mat.Equal(m, want))
}

func TestTransposePairs(t *testing.T) {
	eye, err := linop.Eye[float64](3, 5)
	require.NoError(t, err)
	diff, err := axis.Diff[float64](linop.Shape{3, 4}, 0)
	require.NoError(t, err)
	bin, err := axis.Binning[float64](linop.Shape{2, 6}, 3, -1)
	require.NoError(t, err)
	dec, err := selection.Decimate[float64]([]bool{true, false, false, true, false}, nil)
	require.NoError(t, err)
	kernel := linop.Array[float64]{Data: []float64{1, -2, 0.5, 3}, Shape: linop.Shape{2, 2}}
	cv, err := conv.Convolve(linop.Shape{3, 4}, kernel, conv.ModeSame)
	require.NoError(t, err)

	for _, op := range []*linop.Linear[float64]{eye, diff, bin, dec, cv} {
		t.Run(op.Kind().String(), func(t *testing.T) {
			requireTransposePair(t, op)
		})
	}
}

func TestAdjointOfMissing(t *testing.T) {
	op, err := linop.New(1, 1, func(x []float64) ([]float64, error) { return x, nil }, nil)
	require.NoError(t, err)
	_, err = AdjointOf(op)
	assert.ErrorIs(t, err, linop.ErrNoAdjoint)
}

func TestOfEmpty(t *testing.T) {
	op, err := selection.Decimate[float64]([]bool{true}, nil)
	require.NoError(t, err)
	_, err = Of(op)
	assert.ErrorIs(t, err, linop.ErrInvalidShape)
}

func TestOfComplexFFT(t *testing.T) {
	op, err := fourier.FFTN(linop.Shape{4})
	require.NoError(t, err)

	m, err := OfComplex(op)
	require.NoError(t, err)
	// Row 1 of the 4-point DFT matrix is 1, -i, -1, i.
	want := []complex128{1, -1i, -1, 1i}
	for j, w := range want {
		got := m.At(1, j)
		assert.InDelta(t, real(w), real(got), 1e-12)
		assert.InDelta(t, imag(w), imag(got), 1e-12)
	}
}
