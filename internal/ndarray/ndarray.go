// Package ndarray holds the row-major indexing and elementwise kernels shared
// by the operator factories.
package ndarray

import (
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Number mirrors linop.Scalar without importing it.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// Split decomposes shape around axis into the number of leading slices, the
// extent of axis and the contiguous run length of trailing elements. The
// element at (o, i, j) lives at flat index (o*n+i)*inner + j.
func Split(shape []int, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for i, d := range shape {
		switch {
		case i < axis:
			outer *= d
		case i > axis:
			inner *= d
		}
	}
	return outer, shape[axis], inner
}

// Strides returns row-major element strides for shape.
func Strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

// Unravel writes the multi-index of flat index k into idx.
func Unravel(k int, shape, idx []int) {
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 0 {
			idx[i] = 0
			continue
		}
		idx[i] = k % shape[i]
		k /= shape[i]
	}
}

// MulBlock writes a[i]*b[i] into dst. float64 data is routed through the
// SIMD kernels of algo-vecmath.
func MulBlock[T Number](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlock(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulBlockInPlace multiplies dst elementwise by src.
func MulBlockInPlace[T Number](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// Scale returns a new slice holding s*x.
func Scale[T Number](x []T, s T) []T {
	out := make([]T, len(x))
	if d, ok := any(out).([]float64); ok {
		vecmath.ScaleBlock(d, any(x).([]float64), any(s).(float64))
		return out
	}
	for i, v := range x {
		out[i] = s * v
	}
	return out
}

// AddScaled adds s*src to dst. tmp is scratch space of at least len(src)
// elements used by the float64 path.
func AddScaled[T Number](dst, src []T, s T, tmp []T) {
	if d, ok := any(dst).([]float64); ok {
		t := any(tmp).([]float64)[:len(src)]
		vecmath.ScaleBlock(t, any(src).([]float64), any(s).(float64))
		vecmath.AddBlockInPlace(d, t)
		return
	}
	for i, v := range src {
		dst[i] += s * v
	}
}

// Conj returns the complex conjugate of v; real values are returned as is.
func Conj[T Number](v T) T {
	switch c := any(v).(type) {
	case complex128:
		return any(cmplx.Conj(c)).(T)
	case complex64:
		return any(complex64(cmplx.Conj(complex128(c)))).(T)
	default:
		return v
	}
}

// Dot returns the inner product sum(conj(a[i]) * b[i]).
func Dot[T Number](a, b []T) T {
	if x, ok := any(a).([]float64); ok {
		return any(vecmath.DotProduct(x, any(b).([]float64))).(T)
	}
	var sum T
	for i := range a {
		sum += Conj(a[i]) * b[i]
	}
	return sum
}

// Abs returns |v| as a float64.
func Abs[T Number](v T) float64 {
	switch c := any(v).(type) {
	case float32:
		if c < 0 {
			return float64(-c)
		}
		return float64(c)
	case float64:
		if c < 0 {
			return -c
		}
		return c
	case complex64:
		return cmplx.Abs(complex128(c))
	case complex128:
		return cmplx.Abs(c)
	}
	return 0
}

// Resize copies the region src and dst have in common from a row-major array
// of shape from into a new array of shape to, zero-filling the remainder.
func Resize[T Number](src []T, from, to []int) []T {
	size := 1
	for _, d := range to {
		size *= d
	}
	out := make([]T, size)
	strides := Strides(from)
	idx := make([]int, len(to))
outer:
	for k := range out {
		Unravel(k, to, idx)
		off := 0
		for d, i := range idx {
			if i >= from[d] {
				continue outer
			}
			off += i * strides[d]
		}
		out[k] = src[off]
	}
	return out
}
