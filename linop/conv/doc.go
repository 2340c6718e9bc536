// Package conv provides n-dimensional convolution and the convolution operator.
//
// [Direct] computes the full linear convolution of two arrays of equal rank.
// [Convolve] wraps it into a [linop.Linear] whose output shape follows the
// mode:
//
//   - ModeFull: extent n+k-1 per axis
//   - ModeSame: extent n, centered on the full result
//   - ModeValid: extent n-k+1, only positions where the kernel fully overlaps
//
// The adjoint is the correlation with the kernel cropped to the size-inverse
// mode, so full and valid operators are each other's transposes:
//
//	op, err := conv.Convolve(linop.Shape{64, 64}, kernel, conv.ModeSame)
//	y, err := op.Apply(x)
//	g, err := op.ApplyAdjoint(r)
package conv
