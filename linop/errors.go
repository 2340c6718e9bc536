package linop

import "errors"

// Errors returned by operator construction and application.
var (
	ErrInvalidShape   = errors.New("linop: invalid shape")
	ErrInvalidAxis    = errors.New("linop: axis out of range")
	ErrShapeMismatch  = errors.New("linop: shape mismatch")
	ErrNotSquare      = errors.New("linop: operator must be square")
	ErrNotScalar      = errors.New("linop: expected a scalar")
	ErrMissingForward = errors.New("linop: missing forward function")
	ErrNoAdjoint      = errors.New("linop: operator has no adjoint")
)
