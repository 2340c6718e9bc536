package linop

// Option configures operator construction.
type Option func(*config)

type config struct {
	dtype    DType
	dtypeIn  DType
	dtypeOut DType
	kind     Kind
	rows     int
	cols     int
	hasShape bool
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDType overrides the element type annotation of the operator.
func WithDType(d DType) Option {
	return func(c *config) {
		c.dtype = d
	}
}

// WithDTypes annotates operators whose domain and codomain element types
// differ, such as real-to-complex transforms.
func WithDTypes(in, out DType) Option {
	return func(c *config) {
		c.dtypeIn = in
		c.dtypeOut = out
	}
}

// WithShape sets an explicit (rows, cols) shape. Factories that infer their
// shape from their parameters validate it against this value.
func WithShape(rows, cols int) Option {
	return func(c *config) {
		c.rows = rows
		c.cols = cols
		c.hasShape = true
	}
}

// WithKind tags the operator with the transform it implements. Factories set
// this themselves; callers building custom operators may leave it unset.
func WithKind(k Kind) Option {
	return func(c *config) {
		c.kind = k
	}
}
