package linop

import "fmt"

// Array is a dense row-major n-dimensional view over a flat slice.
type Array[T Scalar] struct {
	Data  []T
	Shape Shape
}

// NewArray allocates a zero-filled array of the given shape.
func NewArray[T Scalar](shape Shape) Array[T] {
	return Array[T]{Data: make([]T, shape.Size()), Shape: shape.Clone()}
}

// Reshape views flat as an array of the given shape without copying.
func Reshape[T Scalar](flat []T, shape Shape) (Array[T], error) {
	if len(flat) != shape.Size() {
		return Array[T]{}, fmt.Errorf("%w: cannot reshape %d elements into %v", ErrShapeMismatch, len(flat), shape)
	}
	return Array[T]{Data: flat, Shape: shape.Clone()}, nil
}

// Size returns the number of elements.
func (a Array[T]) Size() int {
	return len(a.Data)
}

// Clone returns a deep copy of a.
func (a Array[T]) Clone() Array[T] {
	data := make([]T, len(a.Data))
	copy(data, a.Data)
	return Array[T]{Data: data, Shape: a.Shape.Clone()}
}

// Flatten returns the underlying data in row-major order.
func (a Array[T]) Flatten() []T {
	return a.Data
}
