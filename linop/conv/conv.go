package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-linop/internal/ndarray"
	"github.com/cwbudde/algo-linop/linop"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrRankMismatch   = errors.New("conv: kernel rank differs from input rank")
	ErrKernelTooLarge = errors.New("conv: kernel larger than input in valid mode")
	ErrInvalidMode    = errors.New("conv: invalid mode")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution with extent n+k-1 per axis.
	ModeFull Mode = iota

	// ModeSame returns output with the same shape as the input, centered
	// on the full result.
	ModeSame

	// ModeValid returns only the positions where the kernel fully overlaps
	// the input, with extent n-k+1 per axis.
	ModeValid
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "full", "same" or "valid" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full":
		return ModeFull, nil
	case "same":
		return ModeSame, nil
	case "valid":
		return ModeValid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Direct performs direct n-dimensional linear convolution of a and k.
// The result has extent a+k-1 along every axis.
//
// This is an O(N*M) algorithm; every input element scatters a scaled copy of
// the kernel into the output, one contiguous kernel row at a time.
func Direct[T linop.Scalar](a, k linop.Array[T]) (linop.Array[T], error) {
	if len(a.Data) == 0 {
		return linop.Array[T]{}, ErrEmptyInput
	}
	if len(k.Data) == 0 {
		return linop.Array[T]{}, ErrEmptyKernel
	}
	if len(a.Shape) != len(k.Shape) {
		return linop.Array[T]{}, fmt.Errorf("%w: %v and %v", ErrRankMismatch, a.Shape, k.Shape)
	}

	outShape := FullShape(a.Shape, k.Shape)
	out := linop.NewArray[T](outShape)
	strides := ndarray.Strides(outShape)

	// Offsets of input and kernel elements in output index space.
	aoff := offsets(a.Shape, strides)
	koff := offsets(k.Shape, strides)

	// Kernel rows along the last axis stay contiguous in the output.
	rowLen := 1
	if len(k.Shape) > 0 {
		rowLen = k.Shape[len(k.Shape)-1]
	}
	tmp := make([]T, rowLen)

	for i, av := range a.Data {
		if av == 0 {
			continue
		}
		base := aoff[i]
		for r := 0; r < len(k.Data); r += rowLen {
			dst := base + koff[r]
			ndarray.AddScaled(out.Data[dst:dst+rowLen], k.Data[r:r+rowLen], av, tmp)
		}
	}
	return out, nil
}

// Crop extracts the sub-array of a starting at origin with the given shape.
func Crop[T linop.Scalar](a linop.Array[T], origin []int, shape linop.Shape) linop.Array[T] {
	out := linop.NewArray[T](shape)
	if len(out.Data) == 0 {
		return out
	}
	strides := ndarray.Strides(a.Shape)
	idx := make([]int, len(shape))
	for i := range out.Data {
		ndarray.Unravel(i, shape, idx)
		src := 0
		for d := range idx {
			src += (idx[d] + origin[d]) * strides[d]
		}
		out.Data[i] = a.Data[src]
	}
	return out
}

// FullShape returns the shape of the full convolution of arrays of shape a and k.
func FullShape(a, k linop.Shape) linop.Shape {
	out := make(linop.Shape, len(a))
	for i := range a {
		out[i] = a[i] + k[i] - 1
	}
	return out
}

// OutputShape returns the shape produced by mode and the origin of that
// region inside the full convolution.
func OutputShape(a, k linop.Shape, mode Mode) (linop.Shape, []int, error) {
	if len(a) != len(k) {
		return nil, nil, fmt.Errorf("%w: %v and %v", ErrRankMismatch, a, k)
	}
	shape := make(linop.Shape, len(a))
	origin := make([]int, len(a))
	for i := range a {
		switch mode {
		case ModeFull:
			shape[i] = a[i] + k[i] - 1
		case ModeSame:
			shape[i] = a[i]
			origin[i] = (k[i] - 1) / 2
		case ModeValid:
			if k[i] > a[i] {
				return nil, nil, fmt.Errorf("%w: axis %d kernel %d input %d", ErrKernelTooLarge, i, k[i], a[i])
			}
			shape[i] = a[i] - k[i] + 1
			origin[i] = k[i] - 1
		default:
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
		}
	}
	return shape, origin, nil
}

func offsets(shape linop.Shape, strides []int) []int {
	off := make([]int, shape.Size())
	idx := make([]int, len(shape))
	for i := range off {
		ndarray.Unravel(i, shape, idx)
		o := 0
		for d := range idx {
			o += idx[d] * strides[d]
		}
		off[i] = o
	}
	return off
}
