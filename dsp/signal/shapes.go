package signal

import (
	"iter"
	"math"
)

// Impulse returns a rectangular pulse of width samples at magnitude,
// followed by zeros up to duration samples in total. A width larger than
// duration extends the sequence to width samples.
func Impulse(width, duration int, magnitude float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for range width {
			if !yield(magnitude) {
				return
			}
		}

		for i := width; i < duration; i++ {
			if !yield(0) {
				return
			}
		}
	}
}

// RaisedCosine returns one period of 0.5 - 0.5cos(2πn/width) scaled to a
// peak of magnitude, followed by zeros up to duration samples in total.
func RaisedCosine(width, duration int, magnitude float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range width {
			v := magnitude * (0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(width)))
			if !yield(v) {
				return
			}
		}

		for i := width; i < duration; i++ {
			if !yield(0) {
				return
			}
		}
	}
}
