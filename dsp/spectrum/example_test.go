package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/digitalfilters/dsp/spectrum"
	"github.com/cwbudde/digitalfilters/dsp/window"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleAnalyze() {
	const sampleRate = 1000.0

	x := make([]float64, 256)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 125 * float64(i) / sampleRate)
	}

	a, err := spectrum.Analyze(x, sampleRate, window.TypeHann)
	if err != nil {
		panic(err)
	}

	peak := a.Peak()
	fmt.Printf("peak at %.1f Hz\n", a.Frequencies[peak])
	// Output:
	// peak at 125.0 Hz
}
