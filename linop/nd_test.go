package linop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transpose2 swaps the axes of a 2-d array.
func transpose2(x Array[float64]) (Array[float64], error) {
	r, c := x.Shape[0], x.Shape[1]
	out := NewArray[float64](Shape{c, r})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Data[j*r+i] = x.Data[i*c+j]
		}
	}
	return out, nil
}

func TestNDTranspose(t *testing.T) {
	op, err := ND(Shape{2, 3}, Shape{3, 2}, transpose2, transpose2)
	require.NoError(t, err)

	rows, cols := op.Shape()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 6, cols)

	x := []float64{1, 2, 3, 4, 5, 6}
	y, err := op.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, y)

	back, err := op.ApplyAdjoint(y)
	require.NoError(t, err)
	assert.Equal(t, x, back)
}

func TestNDRectangular(t *testing.T) {
	sumRows := func(x Array[float64]) (Array[float64], error) {
		out := NewArray[float64](Shape{x.Shape[0]})
		for i := 0; i < x.Shape[0]; i++ {
			for j := 0; j < x.Shape[1]; j++ {
				out.Data[i] += x.Data[i*x.Shape[1]+j]
			}
		}
		return out, nil
	}
	op, err := ND(Shape{2, 4}, Shape{2}, sumRows, nil)
	require.NoError(t, err)

	rows, cols := op.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 8, cols)
	assert.False(t, op.HasAdjoint())

	y, err := op.Apply([]float64{1, 1, 1, 1, 2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8}, y)
}

func TestNDWrongResultSize(t *testing.T) {
	op, err := ND(Shape{4}, Shape{4}, func(x Array[float64]) (Array[float64], error) {
		return NewArray[float64](Shape{3}), nil
	}, nil)
	require.NoError(t, err)

	_, err = op.Apply(make([]float64, 4))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNDErrors(t *testing.T) {
	_, err := ND[float64](Shape{2}, Shape{2}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingForward)

	_, err = ND(Shape{-2}, Shape{2}, transpose2, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}
