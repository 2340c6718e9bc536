package linop

import (
	"fmt"

	"github.com/cwbudde/algo-linop/internal/ndarray"
)

// DotTest returns |<A x, y> - <x, A* y>|, which vanishes up to rounding when
// ApplyAdjoint is the adjoint of Apply.
func DotTest[T Scalar](op Operator[T], x, y []T) (float64, error) {
	if !op.HasAdjoint() {
		return 0, ErrNoAdjoint
	}
	ax, err := op.Apply(x)
	if err != nil {
		return 0, fmt.Errorf("dot test forward: %w", err)
	}
	aty, err := op.ApplyAdjoint(y)
	if err != nil {
		return 0, fmt.Errorf("dot test adjoint: %w", err)
	}
	return ndarray.Abs(ndarray.Dot(y, ax) - ndarray.Dot(aty, x)), nil
}
