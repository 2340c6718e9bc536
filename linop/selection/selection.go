// Package selection provides masking and decimation operators driven by a
// boolean mask.
package selection

import (
	"fmt"

	"github.com/cwbudde/algo-linop/linop"
)

func checkMask(m []bool, shape linop.Shape) (linop.Shape, error) {
	if shape == nil {
		shape = linop.Shape{len(m)}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(m) != shape.Size() {
		return nil, fmt.Errorf("%w: mask has %d entries for shape %v", linop.ErrShapeMismatch, len(m), shape)
	}
	return shape.Clone(), nil
}

// Mask returns the operator that zeroes the entries where m is true and
// leaves the others unchanged. m is laid out in row-major order over shape;
// a nil shape means the 1-d shape (len(m),). Zeroing is its own adjoint.
func Mask[T linop.Scalar](m []bool, shape linop.Shape, opts ...linop.Option) (*linop.Linear[T], error) {
	shape, err := checkMask(m, shape)
	if err != nil {
		return nil, err
	}
	mask := append([]bool(nil), m...)

	f := func(x linop.Array[T]) (linop.Array[T], error) {
		y := x.Clone()
		for i, masked := range mask {
			if masked {
				y.Data[i] = 0
			}
		}
		return y, nil
	}
	opts = append([]linop.Option{linop.WithKind(linop.KindMask)}, opts...)
	return linop.ND(shape, shape, f, f, opts...)
}

// Decimate returns the operator that keeps the entries where m is false,
// in row-major order. The adjoint scatters a kept-entry vector back into a
// zero-filled array of the mask shape.
func Decimate[T linop.Scalar](m []bool, shape linop.Shape, opts ...linop.Option) (*linop.Linear[T], error) {
	shape, err := checkMask(m, shape)
	if err != nil {
		return nil, err
	}

	var keep []int
	for i, masked := range m {
		if !masked {
			keep = append(keep, i)
		}
	}
	shapeout := linop.Shape{len(keep)}

	matvec := func(x linop.Array[T]) (linop.Array[T], error) {
		y := linop.NewArray[T](shapeout)
		for j, i := range keep {
			y.Data[j] = x.Data[i]
		}
		return y, nil
	}
	rmatvec := func(y linop.Array[T]) (linop.Array[T], error) {
		x := linop.NewArray[T](shape)
		for j, i := range keep {
			x.Data[i] = y.Data[j]
		}
		return x, nil
	}
	opts = append([]linop.Option{linop.WithKind(linop.KindDecimate)}, opts...)
	return linop.ND(shape, shapeout, matvec, rmatvec, opts...)
}
