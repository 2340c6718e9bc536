package linop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-linop/internal/testutil"
)

func TestIdentity(t *testing.T) {
	for _, n := range []int{1, 4, 17} {
		op, err := Identity[float64](n, n)
		require.NoError(t, err)
		assert.Equal(t, KindIdentity, op.Kind())

		x := testutil.DeterministicNoise(int64(n), 1, n)
		y, err := op.Apply(x)
		require.NoError(t, err)
		assert.Equal(t, x, y)

		z, err := op.ApplyAdjoint(x)
		require.NoError(t, err)
		assert.Equal(t, x, z)
	}
}

func TestIdentityNotSquare(t *testing.T) {
	_, err := Identity[float64](3, 4)
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestDiag(t *testing.T) {
	d := []float64{1, -2, 0.5, 4, 3}
	op, err := Diag(d)
	require.NoError(t, err)

	rows, cols := op.Shape()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, KindDiag, op.Kind())

	x := testutil.DeterministicNoise(3, 1, 5)
	want := make([]float64, 5)
	for i := range x {
		want[i] = d[i] * x[i]
	}

	y, err := op.Apply(x)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, y, want, 0)

	z, err := op.ApplyAdjoint(x)
	require.NoError(t, err)
	assert.Equal(t, y, z)
}

func TestDiagComplex(t *testing.T) {
	op, err := Diag([]complex128{1i, 2})
	require.NoError(t, err)
	assert.Equal(t, Complex128, op.DType())

	y, err := op.Apply([]complex128{1, 1 + 1i})
	require.NoError(t, err)
	assert.Equal(t, []complex128{1i, 2 + 2i}, y)
}

func TestDiagShape(t *testing.T) {
	d := []float64{1, 2, 3}

	_, err := Diag(d, WithShape(3, 3))
	require.NoError(t, err)

	_, err = Diag(d, WithShape(3, 4))
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = Diag(d, WithShape(4, 4))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDiagDoesNotAliasInput(t *testing.T) {
	d := []float64{1, 2}
	op, err := Diag(d)
	require.NoError(t, err)
	d[0] = 10

	y, err := op.Apply([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, y)
}

func TestEye(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		x          []float64
		want       []float64
		y          []float64
		wantAdj    []float64
	}{
		{
			name: "square", rows: 3, cols: 3,
			x: []float64{1, 2, 3}, want: []float64{1, 2, 3},
			y: []float64{4, 5, 6}, wantAdj: []float64{4, 5, 6},
		},
		{
			name: "truncate", rows: 2, cols: 4,
			x: []float64{1, 2, 3, 4}, want: []float64{1, 2},
			y: []float64{5, 6}, wantAdj: []float64{5, 6, 0, 0},
		},
		{
			name: "pad", rows: 4, cols: 2,
			x: []float64{1, 2}, want: []float64{1, 2, 0, 0},
			y: []float64{5, 6, 7, 8}, wantAdj: []float64{5, 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Eye[float64](tt.rows, tt.cols)
			require.NoError(t, err)

			y, err := op.Apply(tt.x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, y)

			z, err := op.ApplyAdjoint(tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdj, z)
		})
	}
}

func TestEyeKind(t *testing.T) {
	sq, err := Eye[float64](2, 2)
	require.NoError(t, err)
	assert.Equal(t, KindIdentity, sq.Kind())

	rect, err := Eye[float64](2, 3)
	require.NoError(t, err)
	assert.Equal(t, KindEye, rect.Kind())
}

func TestMul(t *testing.T) {
	op, err := Mul[float64](Shape{2, 2}, 2.5)
	require.NoError(t, err)
	assert.Equal(t, KindMul, op.Kind())

	y, err := op.Apply([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 5, 7.5, 10}, y)

	z, err := op.ApplyAdjoint([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, y, z)
}

func TestMulScalarConversion(t *testing.T) {
	op, err := Mul[complex128](Shape{2}, 3)
	require.NoError(t, err)
	y, err := op.Apply([]complex128{1i, 1})
	require.NoError(t, err)
	assert.Equal(t, []complex128{3i, 3}, y)

	_, err = Mul[float64](Shape{2}, 1i)
	assert.ErrorIs(t, err, ErrNotScalar)
}

func TestMulRejectsVector(t *testing.T) {
	_, err := Mul[float64](Shape{3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrNotScalar)

	_, err = Mul[float64](Shape{3}, "2")
	assert.ErrorIs(t, err, ErrNotScalar)
}
