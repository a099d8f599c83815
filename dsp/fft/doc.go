// Package fft implements a fixed-size radix-2 Fast Fourier Transform.
//
// An [FFT] is created for one transform length and reused for any number of
// forward or inverse transforms of that length. Twiddle factors are computed
// once per [FFT] in a [Twiddles] table whose resolution is twice the transform
// length, which leaves room for the real-input optimization in
// [FFT.ForwardTransform]: 2N real samples are packed into N complex samples,
// transformed, and unmixed into N+1 bins from DC to Nyquist.
//
// The forward transform is unnormalized. Inverse transforms divide by the
// transform length, so a forward transform followed by an inverse one
// reproduces the input to within floating-point rounding.
package fft
