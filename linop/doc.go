// Package linop provides matrix-free linear operators for iterative solvers.
//
// An [Operator] exposes a forward action Apply and, optionally, its adjoint
// ApplyAdjoint over flat vectors. Solvers such as conjugate gradient or LSQR
// only need these two products and the operator shape, so transforms like
// scaling, FFTs or convolutions never have to be stored as dense matrices.
//
// # Building operators
//
// Flat actions are wrapped with [New]. Actions defined on n-dimensional
// arrays are adapted with [ND], which reshapes the flat vectors on the way in
// and flattens the results on the way out:
//
//	op, err := linop.ND(linop.Shape{4, 8}, linop.Shape{4, 8}, f, g)
//
// Actions that need auxiliary per-array metadata use [ViewSubclass] or
// [AllocSubclass] with a [Template] describing the expected array.
//
// This package also provides the basic square operators [Diag], [Identity],
// [Eye] and [Mul]. Transform-specific factories live in the subpackages
// fourier, conv, selection, axis and eigen.
//
// # Errors
//
// Invalid parameters are rejected when the operator is built. At apply time
// the only failure is a vector of the wrong length, reported as
// [ErrShapeMismatch].
package linop
