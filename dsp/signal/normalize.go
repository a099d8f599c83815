package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Normalize scales data to target peak amplitude and returns a new slice.
// All-zero input yields all-zero output.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: normalize target peak must be >= 0: %f", ErrInvalidArgument, targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input must not be empty", ErrInvalidArgument)
	}

	peak := 0.0
	for _, v := range data {
		peak = math.Max(peak, math.Abs(v))
	}

	out := make([]float64, len(data))
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/peak)

	return out, nil
}
