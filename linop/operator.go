package linop

import "fmt"

// Operator is a matrix-free linear map between flat vectors.
//
// Apply maps a vector of length cols to one of length rows. ApplyAdjoint maps
// length rows back to length cols and returns ErrNoAdjoint when the operator
// was built without an adjoint.
type Operator[T Scalar] interface {
	Shape() (rows, cols int)
	DType() DType
	DTypeIn() DType
	DTypeOut() DType
	Apply(x []T) ([]T, error)
	ApplyAdjoint(y []T) ([]T, error)
	HasAdjoint() bool
}

// Kind identifies the transform behind a Linear operator.
type Kind int

const (
	KindGeneric Kind = iota
	KindEigen
	KindDiag
	KindIdentity
	KindEye
	KindFFT
	KindConvolve
	KindMask
	KindDecimate
	KindDiff
	KindBinning
	KindAxisMul
	KindMul
)

var kindNames = [...]string{
	KindGeneric:  "generic",
	KindEigen:    "eigen",
	KindDiag:     "diag",
	KindIdentity: "identity",
	KindEye:      "eye",
	KindFFT:      "fft",
	KindConvolve: "convolve",
	KindMask:     "mask",
	KindDecimate: "decimate",
	KindDiff:     "diff",
	KindBinning:  "binning",
	KindAxisMul:  "axis_mul",
	KindMul:      "mul",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// SelfAdjoint reports whether operators of this kind use the forward function
// as their adjoint.
func (k Kind) SelfAdjoint() bool {
	switch k {
	case KindEigen, KindDiag, KindIdentity, KindMask, KindAxisMul, KindMul:
		return true
	default:
		return false
	}
}

// MatVec is a flat forward or adjoint action.
type MatVec[T Scalar] func(x []T) ([]T, error)

// Linear is the concrete Operator produced by every factory in this module.
// It is immutable after construction and safe for concurrent use.
type Linear[T Scalar] struct {
	rows, cols int
	dtype      DType
	dtypeIn    DType
	dtypeOut   DType
	kind       Kind
	matvec     MatVec[T]
	rmatvec    MatVec[T]
}

var _ Operator[float64] = (*Linear[float64])(nil)

// New wraps a forward action and an optional adjoint action into an operator
// of shape (rows, cols). A nil rmatvec produces an operator without adjoint.
func New[T Scalar](rows, cols int, matvec, rmatvec MatVec[T], opts ...Option) (*Linear[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidShape, rows, cols)
	}
	if matvec == nil {
		return nil, ErrMissingForward
	}

	cfg := applyOptions(opts)
	if cfg.hasShape && (cfg.rows != rows || cfg.cols != cols) {
		return nil, fmt.Errorf("%w: requested (%d, %d), operator is (%d, %d)",
			ErrShapeMismatch, cfg.rows, cfg.cols, rows, cols)
	}

	op := &Linear[T]{
		rows:     rows,
		cols:     cols,
		dtype:    cfg.dtype,
		dtypeIn:  cfg.dtypeIn,
		dtypeOut: cfg.dtypeOut,
		kind:     cfg.kind,
		matvec:   matvec,
		rmatvec:  rmatvec,
	}
	if op.dtype == DTypeUnknown {
		op.dtype = DTypeOf[T]()
	}
	if op.dtypeIn == DTypeUnknown {
		op.dtypeIn = op.dtype
	}
	if op.dtypeOut == DTypeUnknown {
		op.dtypeOut = op.dtype
	}
	return op, nil
}

// Shape returns the (rows, cols) dimensions of the operator matrix.
func (op *Linear[T]) Shape() (rows, cols int) {
	return op.rows, op.cols
}

// DType returns the element type annotation.
func (op *Linear[T]) DType() DType { return op.dtype }

// DTypeIn returns the domain element type.
func (op *Linear[T]) DTypeIn() DType { return op.dtypeIn }

// DTypeOut returns the codomain element type.
func (op *Linear[T]) DTypeOut() DType { return op.dtypeOut }

// Kind returns the transform tag.
func (op *Linear[T]) Kind() Kind { return op.kind }

// HasAdjoint reports whether ApplyAdjoint is available.
func (op *Linear[T]) HasAdjoint() bool { return op.rmatvec != nil }

// Apply computes A·x.
func (op *Linear[T]) Apply(x []T) ([]T, error) {
	return run(op.matvec, x, op.cols, op.rows, "apply")
}

// ApplyAdjoint computes A*·y.
func (op *Linear[T]) ApplyAdjoint(y []T) ([]T, error) {
	if op.rmatvec == nil {
		return nil, fmt.Errorf("%w: %s operator", ErrNoAdjoint, op.kind)
	}
	return run(op.rmatvec, y, op.rows, op.cols, "apply adjoint")
}

func (op *Linear[T]) String() string {
	return fmt.Sprintf("<%dx%d %s operator with dtype=%s>", op.rows, op.cols, op.kind, op.dtype)
}

func run[T Scalar](f MatVec[T], x []T, sizeIn, sizeOut int, action string) ([]T, error) {
	if len(x) != sizeIn {
		return nil, fmt.Errorf("%w: %s expects length %d, got %d", ErrShapeMismatch, action, sizeIn, len(x))
	}
	y, err := f(x)
	if err != nil {
		return nil, err
	}
	if len(y) != sizeOut {
		return nil, fmt.Errorf("%w: %s produced length %d, want %d", ErrShapeMismatch, action, len(y), sizeOut)
	}
	return y, nil
}
