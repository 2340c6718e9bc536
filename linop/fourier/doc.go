// Package fourier provides discrete Fourier transform operators.
//
// [FFTN] transforms any subset of axes of an n-dimensional array, [FFT2] the
// last two axes of a 2-d array. Both act on complex128 vectors; real input is
// passed with zero imaginary parts. Transforms are computed with algo-fft
// plans, which are created once per axis length when the operator is built
// and pooled so concurrent Apply calls never share scratch space.
//
// The adjoint slot holds the normalized inverse transform, so
// ApplyAdjoint(Apply(x)) reproduces x. The true adjoint of the unnormalized
// forward transform is the inverse scaled by the number of transformed
// elements.
package fourier
