//go:build fastmath

package core

import "github.com/meko-christian/algo-approx"

const (
	ln10    = 2.30258509299404568401799145468436421
	invLn10 = 1 / ln10
)

// mathLog10 computes log10(x) using a fast natural log approximation.
func mathLog10(x float64) float64 {
	return approx.FastLog(x) * invLn10
}

// mathPower10 computes 10^x using a fast exp approximation.
func mathPower10(x float64) float64 {
	return approx.FastExp(x * ln10)
}
