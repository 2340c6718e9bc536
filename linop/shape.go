package linop

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape lists the extents of an n-dimensional array in row-major order.
type Shape []int

// Size returns the number of elements described by s. The empty shape
// describes a scalar and has size 1.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Ndim returns the number of dimensions.
func (s Shape) Ndim() int {
	return len(s)
}

// Validate reports ErrInvalidShape when any extent is negative.
func (s Shape) Validate() error {
	for i, d := range s {
		if d < 0 {
			return fmt.Errorf("%w: extent %d of %v is negative", ErrInvalidShape, i, s)
		}
	}
	return nil
}

// Axis normalizes axis against the rank of s. Negative values count from
// the last dimension, so -1 addresses the last axis.
func (s Shape) Axis(axis int) (int, error) {
	n := len(s)
	a := axis
	if a < 0 {
		a += n
	}
	if a < 0 || a >= n {
		return 0, fmt.Errorf("%w: axis %d for %d-d shape", ErrInvalidAxis, axis, n)
	}
	return a, nil
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and o have identical extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// With returns a copy of s where the extent at axis is replaced by n.
// axis must already be normalized.
func (s Shape) With(axis, n int) Shape {
	out := s.Clone()
	out[axis] = n
	return out
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
