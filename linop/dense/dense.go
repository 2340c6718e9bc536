// Package dense materializes matrix-free operators as gonum matrices, one
// column per unit vector. It is meant for inspection and testing of small
// operators.
package dense

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-linop/linop"
)

// Of returns the dense matrix of op.
func Of(op linop.Operator[float64]) (*mat.Dense, error) {
	rows, cols := op.Shape()
	return build(rows, cols, op.Apply)
}

// AdjointOf returns the dense matrix of the adjoint of op, of shape (cols, rows).
func AdjointOf(op linop.Operator[float64]) (*mat.Dense, error) {
	if !op.HasAdjoint() {
		return nil, linop.ErrNoAdjoint
	}
	rows, cols := op.Shape()
	return build(cols, rows, op.ApplyAdjoint)
}

func build(rows, cols int, apply func([]float64) ([]float64, error)) (*mat.Dense, error) {
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: cannot materialize (%d, %d)", linop.ErrInvalidShape, rows, cols)
	}
	m := mat.NewDense(rows, cols, nil)
	e := make([]float64, cols)
	for j := 0; j < cols; j++ {
		e[j] = 1
		col, err := apply(e)
		if err != nil {
			return nil, fmt.Errorf("dense: column %d: %w", j, err)
		}
		m.SetCol(j, col)
		e[j] = 0
	}
	return m, nil
}

// OfComplex returns the dense complex matrix of op.
func OfComplex(op linop.Operator[complex128]) (*mat.CDense, error) {
	rows, cols := op.Shape()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: cannot materialize (%d, %d)", linop.ErrInvalidShape, rows, cols)
	}
	m := mat.NewCDense(rows, cols, nil)
	e := make([]complex128, cols)
	for j := 0; j < cols; j++ {
		e[j] = 1
		col, err := op.Apply(e)
		if err != nil {
			return nil, fmt.Errorf("dense: column %d: %w", j, err)
		}
		for i, v := range col {
			m.Set(i, j, v)
		}
		e[j] = 0
	}
	return m, nil
}
