// Package window provides cosine-sum window functions for spectrum analysis.
//
// Windows can be evaluated at fractional sample offsets with [At], which is
// useful when interpolating, or generated as coefficient slices with
// [Generate] and applied to sample blocks with [Apply].
package window
