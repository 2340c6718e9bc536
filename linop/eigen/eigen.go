// Package eigen builds operators approximating a symmetric matrix from part
// of its eigen-decomposition.
package eigen

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-linop/linop"
)

// Errors returned by eigen operator construction.
var (
	ErrLengthMismatch = errors.New("eigen: eigenvalue and eigenvector counts differ")
	ErrInvalidRank    = errors.New("eigen: invalid number of eigenpairs")
	ErrNoConvergence  = errors.New("eigen: decomposition failed")
)

// Operator returns the rows×cols operator x -> Σᵢ (x·vᵢ) eᵢ vᵢ built from the
// eigenvalues e and eigenvectors v. The map is symmetric, so the forward
// function doubles as the adjoint. Every vᵢ must have length rows == cols.
func Operator(rows, cols int, e []float64, v [][]float64, opts ...linop.Option) (*linop.Linear[float64], error) {
	if rows != cols {
		return nil, fmt.Errorf("%w: eigen operator shape (%d, %d)", linop.ErrNotSquare, rows, cols)
	}
	if len(e) != len(v) {
		return nil, fmt.Errorf("%w: %d values, %d vectors", ErrLengthMismatch, len(e), len(v))
	}

	values := append([]float64(nil), e...)
	vectors := make([][]float64, len(v))
	for i, vi := range v {
		if len(vi) != cols {
			return nil, fmt.Errorf("%w: eigenvector %d has length %d, want %d", linop.ErrShapeMismatch, i, len(vi), cols)
		}
		vectors[i] = append([]float64(nil), vi...)
	}

	matvec := func(x []float64) ([]float64, error) {
		y := make([]float64, rows)
		for i, vi := range vectors {
			floats.AddScaled(y, floats.Dot(x, vi)*values[i], vi)
		}
		return y, nil
	}
	opts = append([]linop.Option{linop.WithKind(linop.KindEigen)}, opts...)
	return linop.New(rows, cols, matvec, matvec, opts...)
}

// FromSymmetric decomposes a and returns the operator built from its k
// eigenpairs of largest magnitude.
func FromSymmetric(a mat.Symmetric, k int, opts ...linop.Option) (*linop.Linear[float64], error) {
	n := a.SymmetricDim()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d for %dx%d matrix", ErrInvalidRank, k, n, n)
	}

	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return nil, ErrNoConvergence
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return math.Abs(values[order[i]]) > math.Abs(values[order[j]])
	})

	e := make([]float64, k)
	v := make([][]float64, k)
	for i, idx := range order[:k] {
		e[i] = values[idx]
		v[i] = mat.Col(nil, idx, &vecs)
	}
	return Operator(n, n, e, v, opts...)
}
