package window

import (
	"math"

	"github.com/cwbudde/digitalfilters/dsp/fft"
)

const (
	// analyzeOversampling is the zero-padding factor of the analysis
	// spectrum, in points per window bin.
	analyzeOversampling = 16
	maxAnalyzeLength    = 2 * fft.MaxSize
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients from
// a zero-padded FFT of the window. Windows longer than fft.MaxSize/8 samples
// are analyzed with less oversampling.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	coherentGain, err := CoherentGain(coeffs)
	if err != nil || coherentGain == 0 {
		return Analysis{}
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}
	}

	power, binsPerPoint, ok := paddedPowerSpectrum(coeffs)
	if !ok {
		return Analysis{CoherentGain: coherentGain, ENBW: enbw}
	}

	dc := power[0]
	a := Analysis{
		CoherentGain:      coherentGain,
		ENBW:              enbw,
		HighestSidelobedB: math.Inf(-1),
		ScallopLossdB:     10 * math.Log10(dtftPower(coeffs, 0.5/float64(n))/dc),
	}

	for k := 1; k < len(power); k++ {
		if power[k] <= dc/2 {
			t := (power[k-1] - dc/2) / (power[k-1] - power[k])
			a.Bandwidth3dB = 2 * (float64(k-1) + t) * binsPerPoint
			break
		}
	}

	// Only turn-arounds below 10% of DC count as the first minimum, which
	// skips ripple on wide main lobes.
	minIdx := -1
	for k := 1; k+1 < len(power); k++ {
		if power[k] < dc/10 && power[k+1] > power[k] {
			minIdx = k
			break
		}
	}

	if minIdx < 0 {
		a.FirstMinimumBins = float64(len(power)-1) * binsPerPoint
		return a
	}

	a.FirstMinimumBins = (float64(minIdx) + vertexOffset(power[minIdx-1], power[minIdx], power[minIdx+1])) * binsPerPoint

	peakIdx := minIdx
	for k := minIdx + 1; k < len(power); k++ {
		if power[k] > power[peakIdx] {
			peakIdx = k
		}
	}

	peak := power[peakIdx]
	if peakIdx > minIdx && peakIdx+1 < len(power) {
		l := 10 * math.Log10(power[peakIdx-1])
		c := 10 * math.Log10(power[peakIdx])
		r := 10 * math.Log10(power[peakIdx+1])
		d := vertexOffset(l, c, r)
		a.HighestSidelobedB = c - (l-r)*d/4 - 10*math.Log10(dc)
	} else if peak > 0 {
		a.HighestSidelobedB = 10 * math.Log10(peak/dc)
	}

	return a
}

// paddedPowerSpectrum returns |W|² of the zero-padded window from DC to
// Nyquist, and the spacing of the returned points in window bins.
func paddedPowerSpectrum(coeffs []float64) ([]float64, float64, bool) {
	n := len(coeffs)

	padded := 2 * fft.MinSize
	for padded < n*analyzeOversampling && padded < maxAnalyzeLength {
		padded <<= 1
	}

	if padded < n {
		return nil, 0, false
	}

	t, err := fft.New(padded / 2)
	if err != nil {
		return nil, 0, false
	}

	buf := make([]float64, padded)
	copy(buf, coeffs)

	bins, err := t.ForwardTransform(buf)
	if err != nil {
		return nil, 0, false
	}

	power := make([]float64, len(bins))
	for i, b := range bins {
		power[i] = real(b)*real(b) + imag(b)*imag(b)
	}

	return power, float64(n) / float64(padded), true
}

// vertexOffset returns the offset of the vertex of the parabola through
// (-1, l), (0, c), (1, r), clamped to [-1, 1].
func vertexOffset(l, c, r float64) float64 {
	den := l - 2*c + r
	if den == 0 {
		return 0
	}

	return math.Max(-1, math.Min(1, 0.5*(l-r)/den))
}

// dtftPower evaluates |W(f)|² at a normalized frequency f in cycles/sample.
func dtftPower(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		re += c * math.Cos(w*float64(k))
		im -= c * math.Sin(w*float64(k))
	}

	return re*re + im*im
}
