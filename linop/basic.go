package linop

import (
	"fmt"

	"github.com/cwbudde/algo-linop/internal/ndarray"
)

// Diag returns the square operator that multiplies its input elementwise by
// d. The shape defaults to (len(d), len(d)); an explicit WithShape must be
// square and match len(d).
func Diag[T Scalar](d []T, opts ...Option) (*Linear[T], error) {
	cfg := applyOptions(opts)
	n := len(d)
	if cfg.hasShape {
		if cfg.rows != cfg.cols {
			return nil, fmt.Errorf("%w: diagonal shape (%d, %d)", ErrNotSquare, cfg.rows, cfg.cols)
		}
		if cfg.rows != n {
			return nil, fmt.Errorf("%w: diagonal of length %d for shape (%d, %d)", ErrShapeMismatch, n, cfg.rows, cfg.cols)
		}
	}

	diag := make([]T, n)
	copy(diag, d)
	matvec := func(x []T) ([]T, error) {
		y := make([]T, n)
		ndarray.MulBlock(y, diag, x)
		return y, nil
	}
	return New(n, n, matvec, matvec, append([]Option{WithKind(KindDiag)}, opts...)...)
}

// Identity returns the square identity operator.
func Identity[T Scalar](rows, cols int, opts ...Option) (*Linear[T], error) {
	if rows != cols {
		return nil, fmt.Errorf("%w: identity shape (%d, %d)", ErrNotSquare, rows, cols)
	}
	matvec := func(x []T) ([]T, error) {
		y := make([]T, len(x))
		copy(y, x)
		return y, nil
	}
	return New(rows, cols, matvec, matvec, append([]Option{WithKind(KindIdentity)}, opts...)...)
}

// Eye returns the identity for square shapes. For rectangular shapes the
// forward action keeps the first rows entries of its input (zero-filling when
// cols < rows) and the adjoint zero-pads or truncates back to cols entries.
func Eye[T Scalar](rows, cols int, opts ...Option) (*Linear[T], error) {
	if rows == cols {
		return Identity[T](rows, cols, opts...)
	}
	matvec := func(x []T) ([]T, error) {
		y := make([]T, rows)
		copy(y, x)
		return y, nil
	}
	rmatvec := func(y []T) ([]T, error) {
		x := make([]T, cols)
		copy(x, y)
		return x, nil
	}
	return New(rows, cols, matvec, rmatvec, append([]Option{WithKind(KindEye)}, opts...)...)
}

// Mul returns the operator scaling arrays of shape shapein by num. num must
// be a Go numeric scalar convertible to T; slices and other values fail with
// ErrNotScalar.
func Mul[T Scalar](shapein Shape, num any, opts ...Option) (*Linear[T], error) {
	s, ok := scalarOf[T](num)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotScalar, num)
	}
	f := func(x Array[T]) (Array[T], error) {
		return Array[T]{Data: ndarray.Scale(x.Data, s), Shape: x.Shape}, nil
	}
	return ND(shapein, shapein, f, f, append([]Option{WithKind(KindMul)}, opts...)...)
}

func scalarOf[T Scalar](v any) (T, bool) {
	var zero T
	var c complex128
	switch n := v.(type) {
	case int:
		c = complex(float64(n), 0)
	case int8:
		c = complex(float64(n), 0)
	case int16:
		c = complex(float64(n), 0)
	case int32:
		c = complex(float64(n), 0)
	case int64:
		c = complex(float64(n), 0)
	case uint:
		c = complex(float64(n), 0)
	case uint8:
		c = complex(float64(n), 0)
	case uint16:
		c = complex(float64(n), 0)
	case uint32:
		c = complex(float64(n), 0)
	case uint64:
		c = complex(float64(n), 0)
	case float32:
		c = complex(float64(n), 0)
	case float64:
		c = complex(n, 0)
	case complex64:
		c = complex128(n)
	case complex128:
		c = n
	default:
		return zero, false
	}

	switch any(zero).(type) {
	case float32:
		if imag(c) != 0 {
			return zero, false
		}
		return any(float32(real(c))).(T), true
	case float64:
		if imag(c) != 0 {
			return zero, false
		}
		return any(real(c)).(T), true
	case complex64:
		return any(complex64(c)).(T), true
	case complex128:
		return any(c).(T), true
	}
	return zero, false
}
