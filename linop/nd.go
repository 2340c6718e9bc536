package linop

import "fmt"

// NDFunc is an action on n-dimensional arrays.
type NDFunc[T Scalar] func(x Array[T]) (Array[T], error)

// ND adapts a pair of n-dimensional actions into a flat operator of shape
// (shapeout.Size(), shapein.Size()). Apply reshapes its input to shapein,
// calls f and flattens the result; ApplyAdjoint does the same with g over
// shapeout. A nil g produces an operator without adjoint.
func ND[T Scalar](shapein, shapeout Shape, f, g NDFunc[T], opts ...Option) (*Linear[T], error) {
	if f == nil {
		return nil, ErrMissingForward
	}
	if err := shapein.Validate(); err != nil {
		return nil, err
	}
	if err := shapeout.Validate(); err != nil {
		return nil, err
	}

	in := shapein.Clone()
	out := shapeout.Clone()

	matvec := func(x []T) ([]T, error) {
		return reshapeCall(f, x, in, out)
	}
	var rmatvec MatVec[T]
	if g != nil {
		rmatvec = func(y []T) ([]T, error) {
			return reshapeCall(g, y, out, in)
		}
	}
	return New(out.Size(), in.Size(), matvec, rmatvec, opts...)
}

func reshapeCall[T Scalar](f NDFunc[T], x []T, from, to Shape) ([]T, error) {
	a, err := Reshape(x, from)
	if err != nil {
		return nil, err
	}
	r, err := f(a)
	if err != nil {
		return nil, err
	}
	if len(r.Data) != to.Size() {
		return nil, fmt.Errorf("%w: result has %d elements, want %v", ErrShapeMismatch, len(r.Data), to)
	}
	return r.Data, nil
}
