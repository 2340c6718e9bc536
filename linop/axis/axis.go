// Package axis provides operators acting along a single axis of an
// n-dimensional array: finite differences, binning and per-slice scaling.
package axis

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-linop/internal/ndarray"
	"github.com/cwbudde/algo-linop/linop"
)

// ErrInvalidFactor is returned when a binning factor is not a positive
// divisor of the binned extent.
var ErrInvalidFactor = errors.New("axis: invalid binning factor")

// Diff returns the finite difference operator along axis, mapping extent n
// to n-1. The adjoint is the negated difference of the zero-padded input.
func Diff[T linop.Scalar](shapein linop.Shape, axis int, opts ...linop.Option) (*linop.Linear[T], error) {
	if err := shapein.Validate(); err != nil {
		return nil, err
	}
	ax, err := shapein.Axis(axis)
	if err != nil {
		return nil, err
	}
	if shapein[ax] < 1 {
		return nil, fmt.Errorf("%w: cannot difference empty axis %d of %v", linop.ErrInvalidShape, axis, shapein)
	}
	shapeout := shapein.With(ax, shapein[ax]-1)

	matvec := func(x linop.Array[T]) (linop.Array[T], error) {
		y := linop.NewArray[T](shapeout)
		outer, n, inner := ndarray.Split(x.Shape, ax)
		for o := 0; o < outer; o++ {
			for i := 0; i < n-1; i++ {
				src := (o*n + i) * inner
				dst := (o*(n-1) + i) * inner
				for j := 0; j < inner; j++ {
					y.Data[dst+j] = x.Data[src+inner+j] - x.Data[src+j]
				}
			}
		}
		return y, nil
	}
	rmatvec := func(y linop.Array[T]) (linop.Array[T], error) {
		x := linop.NewArray[T](shapein)
		outer, m, inner := ndarray.Split(y.Shape, ax)
		n := m + 1
		for o := 0; o < outer; o++ {
			for i := 0; i < n; i++ {
				dst := (o*n + i) * inner
				for j := 0; j < inner; j++ {
					var v T
					if i > 0 {
						v += y.Data[(o*m+i-1)*inner+j]
					}
					if i < m {
						v -= y.Data[(o*m+i)*inner+j]
					}
					x.Data[dst+j] = v
				}
			}
		}
		return x, nil
	}
	opts = append([]linop.Option{linop.WithKind(linop.KindDiff)}, opts...)
	return linop.ND(shapein, shapeout, matvec, rmatvec, opts...)
}

// Binning returns the operator summing every factor consecutive elements
// along axis. The adjoint replicates each value factor times.
func Binning[T linop.Scalar](shapein linop.Shape, factor, axis int, opts ...linop.Option) (*linop.Linear[T], error) {
	if err := shapein.Validate(); err != nil {
		return nil, err
	}
	ax, err := shapein.Axis(axis)
	if err != nil {
		return nil, err
	}
	if factor < 1 || shapein[ax]%factor != 0 {
		return nil, fmt.Errorf("%w: %d for extent %d", ErrInvalidFactor, factor, shapein[ax])
	}
	shapeout := shapein.With(ax, shapein[ax]/factor)

	matvec := func(x linop.Array[T]) (linop.Array[T], error) {
		return Bin(x, factor, ax)
	}
	rmatvec := func(y linop.Array[T]) (linop.Array[T], error) {
		return Replicate(y, factor, ax)
	}
	opts = append([]linop.Option{linop.WithKind(linop.KindBinning)}, opts...)
	return linop.ND(shapein, shapeout, matvec, rmatvec, opts...)
}

// Bin sums every factor consecutive elements of a along axis.
func Bin[T linop.Scalar](a linop.Array[T], factor, axis int) (linop.Array[T], error) {
	ax, err := a.Shape.Axis(axis)
	if err != nil {
		return linop.Array[T]{}, err
	}
	if factor < 1 || a.Shape[ax]%factor != 0 {
		return linop.Array[T]{}, fmt.Errorf("%w: %d for extent %d", ErrInvalidFactor, factor, a.Shape[ax])
	}

	out := linop.NewArray[T](a.Shape.With(ax, a.Shape[ax]/factor))
	outer, n, inner := ndarray.Split(a.Shape, ax)
	m := n / factor
	for o := 0; o < outer; o++ {
		for i := 0; i < n; i++ {
			src := (o*n + i) * inner
			dst := (o*m + i/factor) * inner
			for j := 0; j < inner; j++ {
				out.Data[dst+j] += a.Data[src+j]
			}
		}
	}
	return out, nil
}

// Replicate repeats every element of a factor times along axis.
func Replicate[T linop.Scalar](a linop.Array[T], factor, axis int) (linop.Array[T], error) {
	ax, err := a.Shape.Axis(axis)
	if err != nil {
		return linop.Array[T]{}, err
	}
	if factor < 1 {
		return linop.Array[T]{}, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	outer, m, inner := ndarray.Split(a.Shape, ax)
	n := m * factor
	out := linop.NewArray[T](a.Shape.With(ax, n))
	for o := 0; o < outer; o++ {
		for i := 0; i < n; i++ {
			src := (o*m + i/factor) * inner
			copy(out.Data[(o*n+i)*inner:(o*n+i+1)*inner], a.Data[src:src+inner])
		}
	}
	return out, nil
}

// AxisMul returns the operator multiplying every slice along axis by vect.
// A slice has the shape of shapein with axis removed, and vect broadcasts
// against its last extent, so len(vect) must equal that extent or be 1.
// Scaling is elementwise, so the operator is its own adjoint.
func AxisMul[T linop.Scalar](shapein linop.Shape, vect []T, axis int, opts ...linop.Option) (*linop.Linear[T], error) {
	if err := shapein.Validate(); err != nil {
		return nil, err
	}
	ax, err := shapein.Axis(axis)
	if err != nil {
		return nil, err
	}

	// Axis of shapein that vect runs along; -1 when a slice is a scalar.
	last := len(shapein) - 1
	if last == ax {
		last--
	}
	extent := 1
	if last >= 0 {
		extent = shapein[last]
	}
	if len(vect) != extent && len(vect) != 1 {
		return nil, fmt.Errorf("%w: vector of length %d does not broadcast over slices of %v along axis %d",
			linop.ErrShapeMismatch, len(vect), shapein, axis)
	}

	// Expand vect once so each call is a single elementwise multiply.
	weights := make([]T, shapein.Size())
	if len(vect) == 1 || last < 0 {
		for i := range weights {
			weights[i] = vect[0]
		}
	} else {
		_, n, inner := ndarray.Split(shapein, last)
		for i := range weights {
			weights[i] = vect[(i/inner)%n]
		}
	}

	f := func(x linop.Array[T]) (linop.Array[T], error) {
		y := linop.NewArray[T](x.Shape)
		ndarray.MulBlock(y.Data, x.Data, weights)
		return y, nil
	}
	opts = append([]linop.Option{linop.WithKind(linop.KindAxisMul)}, opts...)
	return linop.ND(shapein, shapein, f, f, opts...)
}
