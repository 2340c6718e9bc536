package linop

// Scalar is the set of element types an operator can act on.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// DType identifies the numeric element type of an operator's domain or codomain.
type DType int

const (
	DTypeUnknown DType = iota
	Float32
	Float64
	Complex64
	Complex128
)

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// IsComplex reports whether d is a complex type.
func (d DType) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// DTypeOf returns the DType tag of T.
func DTypeOf[T Scalar]() DType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return DTypeUnknown
	}
}
