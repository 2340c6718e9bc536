package conv

import (
	"fmt"

	"github.com/cwbudde/algo-linop/internal/ndarray"
	"github.com/cwbudde/algo-linop/linop"
	"github.com/cwbudde/algo-linop/linop/fourier"
)

// directThreshold is the largest kernel, in elements, that Convolve applies
// with Direct. Larger kernels multiply zero-padded spectra instead.
const directThreshold = 64

// spectral convolves arrays of a fixed shape with a fixed kernel through the
// n-d FFT. Every axis is padded to a power of two no shorter than the full
// convolution, so the circular product equals the linear one.
type spectral[T linop.Scalar] struct {
	in     linop.Shape
	full   linop.Shape
	padded linop.Shape
	fft    *linop.Linear[complex128]
	kernel []complex128
}

func newSpectral[T linop.Scalar](in linop.Shape, k linop.Array[T]) (*spectral[T], error) {
	full := FullShape(in, k.Shape)
	padded := make(linop.Shape, len(full))
	for i, n := range full {
		padded[i] = nextPowerOf2(n)
	}

	op, err := fourier.FFTN(padded)
	if err != nil {
		return nil, fmt.Errorf("conv: spectral convolution of %v: %w", in, err)
	}
	kspec, err := op.Apply(ndarray.Resize(toComplex(k.Data), k.Shape, padded))
	if err != nil {
		return nil, fmt.Errorf("conv: kernel spectrum: %w", err)
	}

	return &spectral[T]{
		in:     in.Clone(),
		full:   full,
		padded: padded,
		fft:    op,
		kernel: kspec,
	}, nil
}

// convolve returns the full convolution of x, which must have shape s.in.
func (s *spectral[T]) convolve(x linop.Array[T]) (linop.Array[T], error) {
	spec, err := s.fft.Apply(ndarray.Resize(toComplex(x.Data), s.in, s.padded))
	if err != nil {
		return linop.Array[T]{}, err
	}
	ndarray.MulBlockInPlace(spec, s.kernel)
	prod, err := s.fft.ApplyAdjoint(spec)
	if err != nil {
		return linop.Array[T]{}, err
	}
	full := ndarray.Resize(prod, s.padded, s.full)
	return linop.Array[T]{Data: fromComplex[T](full), Shape: s.full.Clone()}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func toComplex[T linop.Scalar](src []T) []complex128 {
	out := make([]complex128, len(src))
	switch s := any(src).(type) {
	case []float32:
		for i, v := range s {
			out[i] = complex(float64(v), 0)
		}
	case []float64:
		for i, v := range s {
			out[i] = complex(v, 0)
		}
	case []complex64:
		for i, v := range s {
			out[i] = complex128(v)
		}
	case []complex128:
		copy(out, s)
	}
	return out
}

// fromComplex converts back to T, dropping the imaginary round-off for real T.
func fromComplex[T linop.Scalar](src []complex128) []T {
	out := make([]T, len(src))
	switch d := any(out).(type) {
	case []float32:
		for i, v := range src {
			d[i] = float32(real(v))
		}
	case []float64:
		for i, v := range src {
			d[i] = real(v)
		}
	case []complex64:
		for i, v := range src {
			d[i] = complex64(v)
		}
	case []complex128:
		copy(d, src)
	}
	return out
}
