package signal

import "iter"

// Sum adds corresponding samples of a and b. The result ends with the
// shorter input.
func Sum(a, b iter.Seq[float64]) iter.Seq[float64] {
	return zip(a, b, func(x, y float64) float64 { return x + y })
}

// Difference subtracts each sample of b from the corresponding sample of a.
// The result ends with the shorter input.
func Difference(a, b iter.Seq[float64]) iter.Seq[float64] {
	return zip(a, b, func(x, y float64) float64 { return x - y })
}

// Product multiplies corresponding samples of a and b. The result ends with
// the shorter input.
func Product(a, b iter.Seq[float64]) iter.Seq[float64] {
	return zip(a, b, func(x, y float64) float64 { return x * y })
}

func zip(a, b iter.Seq[float64], op func(x, y float64) float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		next, stop := iter.Pull(b)
		defer stop()

		for x := range a {
			y, ok := next()
			if !ok {
				return
			}

			if !yield(op(x, y)) {
				return
			}
		}
	}
}
