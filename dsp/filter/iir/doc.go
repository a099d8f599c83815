// Package iir realizes analog filter prototypes as cascaded digital IIR
// filters using the prewarped bilinear transform.
//
// [New] converts each first- or second-order section of an
// [analog.Prototype] into a [Stage] of feed-forward (CoeffX) and feedback
// (CoeffY) taps. A [Filter] is immutable; it carries no sample history.
// History lives in the lazy sequence returned by [Filter.Filter], or in a
// [Runner] for block processing, so independent streams never share state.
//
//	bw, _ := analog.NewButterworth(4, 2*math.Pi*400, false)
//	lp, _ := iir.New(bw, 8000)
//	for y := range lp.Filter(slices.Values(samples)) {
//		...
//	}
package iir
