// Package signal generates test waveforms as lazy sample sequences.
//
// Sources return iter.Seq[float64] so they compose directly with
// [iir.Filter.Filter] and the combinators [Sum], [Difference] and [Product].
// Use slices.Collect to materialize a sequence.
//
// [iir.Filter.Filter]: github.com/cwbudde/digitalfilters/dsp/filter/iir
package signal
