// Package spectrum turns FFT output into plottable and measurable spectra.
//
// [Analyze] windows a real block and transforms it with dsp/fft; the helpers
// [Magnitude], [Power] and [MagnitudeDB] operate on any complex bins, and
// [Goertzel] measures single frequencies without a full transform.
package spectrum
