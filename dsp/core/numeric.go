package core

import "math"

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Max(lo, math.Min(hi, value))
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
// Building with the fastmath tag trades accuracy for speed.
func DBToLinear(db float64) float64 {
	return mathPower10(db / 20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * mathLog10(linear)
	}
}
