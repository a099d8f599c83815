package spectrum

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/digitalfilters/dsp/fft"
	"github.com/cwbudde/digitalfilters/dsp/window"
)

// ErrInvalidArgument is returned for unsupported block lengths, sample
// rates and mismatched coordinate slices.
var ErrInvalidArgument = errors.New("spectrum: invalid argument")

// Point is one (x, y) coordinate of a plotted curve.
type Point struct {
	X, Y float64
}

// Points pairs xs with ys into plot coordinates.
func Points(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: coordinate length mismatch: %d != %d", ErrInvalidArgument, len(xs), len(ys))
	}

	out := make([]Point, len(xs))
	for i := range xs {
		out[i] = Point{X: xs[i], Y: ys[i]}
	}

	return out, nil
}

// Analysis is the compact spectrum of one real block.
type Analysis struct {
	SampleRate  float64
	Window      window.Type
	Bins        []complex128
	Frequencies []float64
	Magnitudes  []float64
}

// Analyze windows samples and returns their compact spectrum, DC through
// Nyquist. len(samples) must be a power of two between 2·fft.MinSize and
// 2·fft.MaxSize. Magnitudes are not normalized.
func Analyze(samples []float64, sampleRate float64, w window.Type) (*Analysis, error) {
	n := len(samples)
	if !fft.IsPowerOfTwo(n) || n < 2*fft.MinSize || n > 2*fft.MaxSize {
		return nil, fmt.Errorf("%w: block length must be a power of two in [%d, %d]: %d",
			ErrInvalidArgument, 2*fft.MinSize, 2*fft.MaxSize, n)
	}

	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidArgument, sampleRate)
	}

	t, err := fft.New(n / 2)
	if err != nil {
		return nil, err
	}

	buf := slices.Clone(samples)
	window.Apply(w, buf, window.WithPeriodic())

	bins, err := t.ForwardTransform(buf)
	if err != nil {
		return nil, err
	}

	freqs, err := BinFrequencies(len(bins), sampleRate)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		SampleRate:  sampleRate,
		Window:      w,
		Bins:        bins,
		Frequencies: freqs,
		Magnitudes:  Magnitude(bins),
	}, nil
}

// Points returns (frequency, magnitude) coordinates.
func (a *Analysis) Points() []Point {
	pts, _ := Points(a.Frequencies, a.Magnitudes)
	return pts
}

// PointsDB returns (frequency, level) coordinates with levels in dB
// relative to ref.
func (a *Analysis) PointsDB(ref float64) ([]Point, error) {
	db, err := MagnitudeDB(a.Bins, ref)
	if err != nil {
		return nil, err
	}

	return Points(a.Frequencies, db)
}

// Peak returns the index of the strongest bin above DC.
func (a *Analysis) Peak() int {
	best := 1
	for i := 2; i < len(a.Magnitudes); i++ {
		if a.Magnitudes[i] > a.Magnitudes[best] {
			best = i
		}
	}

	return best
}

// BandLevel returns the mean magnitude of the bins whose frequency lies in
// [loHz, hiHz]. It returns 0 when no bin falls in the band.
func (a *Analysis) BandLevel(loHz, hiHz float64) float64 {
	sum, count := 0.0, 0

	for i, f := range a.Frequencies {
		if f >= loHz && f <= hiHz {
			sum += a.Magnitudes[i]
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}
