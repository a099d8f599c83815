// Package analog provides analog (Laplace-domain) filter prototypes.
//
// A [Prototype] describes a low-pass or high-pass analog filter as a cascade
// of first- and second-order denominator sections, each a
// [poly.ComplexPoly] in the cutoff-normalized Laplace variable s/CutOff.
// Prototypes are consumed by dsp/filter/iir, which realizes them as digital
// IIR filters with the bilinear transform.
//
// [Butterworth] is the only prototype implemented; other families plug into
// dsp/filter/iir by implementing [Prototype].
package analog
