package fourier

import "github.com/cwbudde/algo-linop/linop"

// Option configures a Fourier operator.
type Option func(*config)

type config struct {
	axes     []int
	size     []int
	dtypeIn  linop.DType
	dtypeOut linop.DType
}

func defaultConfig() config {
	return config{
		dtypeIn:  linop.Float64,
		dtypeOut: linop.Complex128,
	}
}

// WithAxes selects the axes to transform. Negative axes count from the end.
func WithAxes(axes ...int) Option {
	return func(c *config) {
		c.axes = append([]int(nil), axes...)
	}
}

// WithSize sets the transform length along each selected axis. The input is
// zero-padded or truncated to these lengths before transforming, and the
// output has these extents. Without WithAxes the last len(size) axes are used.
func WithSize(size ...int) Option {
	return func(c *config) {
		c.size = append([]int(nil), size...)
	}
}

// WithDTypes overrides the domain and codomain annotations, which default to
// float64 in and complex128 out.
func WithDTypes(in, out linop.DType) Option {
	return func(c *config) {
		c.dtypeIn = in
		c.dtypeOut = out
	}
}
