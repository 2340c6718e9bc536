package conv

import (
	"fmt"

	"github.com/cwbudde/algo-linop/internal/ndarray"
	"github.com/cwbudde/algo-linop/linop"
)

// Convolve returns the operator convolving arrays of shape shapein with
// kernel. The output shape follows mode. The adjoint correlates with the
// kernel in the size-inverse mode (full and valid swap, same maps to same),
// so the pair satisfies <Ax, y> = <x, A*y> for every kernel.
//
// Kernels of more than 64 elements are applied through zero-padded FFTs,
// smaller ones with Direct.
func Convolve[T linop.Scalar](shapein linop.Shape, kernel linop.Array[T], mode Mode, opts ...linop.Option) (*linop.Linear[T], error) {
	if err := shapein.Validate(); err != nil {
		return nil, err
	}
	if shapein.Size() == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel.Data) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(kernel.Data) != kernel.Shape.Size() {
		return nil, fmt.Errorf("%w: kernel data has %d elements for shape %v",
			linop.ErrShapeMismatch, len(kernel.Data), kernel.Shape)
	}

	shapeout, origin, err := OutputShape(shapein, kernel.Shape, mode)
	if err != nil {
		return nil, err
	}

	k := kernel.Clone()
	flipped := flip(k)

	// Origin of the adjoint crop inside the full correlation.
	adjOrigin := make([]int, len(origin))
	for i := range origin {
		adjOrigin[i] = k.Shape[i] - 1 - origin[i]
	}
	in := shapein.Clone()

	forward := func(x linop.Array[T]) (linop.Array[T], error) { return Direct(x, k) }
	backward := func(y linop.Array[T]) (linop.Array[T], error) { return Direct(y, flipped) }
	if len(k.Data) > directThreshold {
		fw, err := newSpectral(in, k)
		if err != nil {
			return nil, err
		}
		bw, err := newSpectral(shapeout, flipped)
		if err != nil {
			return nil, err
		}
		forward, backward = fw.convolve, bw.convolve
	}

	matvec := func(x linop.Array[T]) (linop.Array[T], error) {
		full, err := forward(x)
		if err != nil {
			return linop.Array[T]{}, err
		}
		return Crop(full, origin, shapeout), nil
	}
	rmatvec := func(y linop.Array[T]) (linop.Array[T], error) {
		full, err := backward(y)
		if err != nil {
			return linop.Array[T]{}, err
		}
		return Crop(full, adjOrigin, in), nil
	}

	opts = append([]linop.Option{linop.WithKind(linop.KindConvolve)}, opts...)
	return linop.ND(shapein, shapeout, matvec, rmatvec, opts...)
}

// flip reverses k along every axis and conjugates it.
func flip[T linop.Scalar](k linop.Array[T]) linop.Array[T] {
	out := linop.NewArray[T](k.Shape)
	n := len(k.Data)
	for i, v := range k.Data {
		out.Data[n-1-i] = ndarray.Conj(v)
	}
	return out
}
