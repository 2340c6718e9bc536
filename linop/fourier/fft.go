package fourier

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-linop/internal/ndarray"
	"github.com/cwbudde/algo-linop/linop"
)

// Errors returned by Fourier operator construction.
var (
	ErrNotTwoDimensional = errors.New("fourier: expected a 2-d shape")
	ErrDuplicateAxis     = errors.New("fourier: axis repeated")
)

// FFTN returns the n-dimensional discrete Fourier transform operator over
// arrays of shape shapein.
func FFTN(shapein linop.Shape, opts ...Option) (*linop.Linear[complex128], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(shapein, cfg)
}

// FFT2 returns the 2-d discrete Fourier transform operator. shapein must have
// exactly two dimensions.
func FFT2(shapein linop.Shape, opts ...Option) (*linop.Linear[complex128], error) {
	if len(shapein) != 2 {
		return nil, fmt.Errorf("%w: got %v", ErrNotTwoDimensional, shapein)
	}
	cfg := defaultConfig()
	cfg.axes = []int{-2, -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(shapein, cfg)
}

func build(shapein linop.Shape, cfg config) (*linop.Linear[complex128], error) {
	if err := shapein.Validate(); err != nil {
		return nil, err
	}
	axes, err := resolveAxes(shapein, cfg.axes, cfg.size)
	if err != nil {
		return nil, err
	}

	shapeout := shapein.Clone()
	for i, ax := range axes {
		if cfg.size != nil {
			if cfg.size[i] < 1 {
				return nil, fmt.Errorf("%w: transform length %d", linop.ErrInvalidShape, cfg.size[i])
			}
			shapeout[ax] = cfg.size[i]
		}
		if shapeout[ax] < 1 {
			return nil, fmt.Errorf("%w: cannot transform empty axis %d of %v", linop.ErrInvalidShape, ax, shapein)
		}
	}

	plans, err := newPlanSet(shapeout, axes)
	if err != nil {
		return nil, err
	}
	in := shapein.Clone()
	resized := !in.Equal(shapeout)

	matvec := func(x linop.Array[complex128]) (linop.Array[complex128], error) {
		data := x.Data
		if resized {
			data = ndarray.Resize(data, in, shapeout)
		} else {
			data = append([]complex128(nil), data...)
		}
		data, err := plans.transform(data, shapeout, axes, false)
		if err != nil {
			return linop.Array[complex128]{}, err
		}
		return linop.Array[complex128]{Data: data, Shape: shapeout}, nil
	}
	rmatvec := func(y linop.Array[complex128]) (linop.Array[complex128], error) {
		data, err := plans.transform(append([]complex128(nil), y.Data...), shapeout, axes, true)
		if err != nil {
			return linop.Array[complex128]{}, err
		}
		if resized {
			data = ndarray.Resize(data, shapeout, in)
		}
		return linop.Array[complex128]{Data: data, Shape: in}, nil
	}

	return linop.ND(in, shapeout, matvec, rmatvec,
		linop.WithKind(linop.KindFFT),
		linop.WithDType(linop.Complex128),
		linop.WithDTypes(cfg.dtypeIn, cfg.dtypeOut),
	)
}

func resolveAxes(shape linop.Shape, axes, size []int) ([]int, error) {
	if axes == nil {
		n := len(shape)
		if size != nil {
			if len(size) > n {
				return nil, fmt.Errorf("%w: %d transform lengths for %d-d shape", linop.ErrInvalidAxis, len(size), n)
			}
			n = len(size)
		}
		axes = make([]int, n)
		for i := range axes {
			axes[i] = len(shape) - n + i
		}
	}
	if size != nil && len(size) != len(axes) {
		return nil, fmt.Errorf("%w: %d transform lengths for %d axes", linop.ErrShapeMismatch, len(size), len(axes))
	}

	out := make([]int, len(axes))
	seen := make(map[int]bool, len(axes))
	for i, a := range axes {
		ax, err := shape.Axis(a)
		if err != nil {
			return nil, err
		}
		if seen[ax] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateAxis, a)
		}
		seen[ax] = true
		out[i] = ax
	}
	return out, nil
}

// planSet pools FFT plans by transform length.
type planSet map[int]*sync.Pool

func newPlanSet(shape linop.Shape, axes []int) (planSet, error) {
	ps := make(planSet, len(axes))
	for _, ax := range axes {
		n := shape[ax]
		if _, ok := ps[n]; ok {
			continue
		}
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("fourier: failed to create FFT plan of length %d: %w", n, err)
		}
		pool := &sync.Pool{New: func() any {
			p, err := algofft.NewPlan64(n)
			if err != nil {
				return nil
			}
			return p
		}}
		pool.Put(plan)
		ps[n] = pool
	}
	return ps, nil
}

func (ps planSet) get(n int) (*algofft.Plan[complex128], error) {
	p, _ := ps[n].Get().(*algofft.Plan[complex128])
	if p == nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan of length %d", n)
	}
	return p, nil
}

// transform runs 1-d transforms along each axis of data and returns the
// result. data is reused as scratch.
func (ps planSet) transform(data []complex128, shape linop.Shape, axes []int, inverse bool) ([]complex128, error) {
	out := make([]complex128, len(data))
	for _, ax := range axes {
		outer, n, inner := ndarray.Split(shape, ax)
		plan, err := ps.get(n)
		if err != nil {
			return nil, err
		}

		// Lines along ax start at (o*n)*inner + j and step by inner.
		for o := 0; o < outer; o++ {
			for j := 0; j < inner; j++ {
				base := o*n*inner + j
				if err := plan.TransformStrided(out[base:], data[base:], inner, inverse); err != nil {
					ps[n].Put(plan)
					return nil, fmt.Errorf("fourier: transform along axis %d failed: %w", ax, err)
				}
			}
		}
		ps[n].Put(plan)
		data, out = out, data
	}
	return data, nil
}
