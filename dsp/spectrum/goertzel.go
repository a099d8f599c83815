package spectrum

import (
	"fmt"
	"iter"
	"math"
)

// Goertzel evaluates one DFT term of a sample stream with a second-order
// recursion, without computing a full transform.
//
// The analyzer accumulates every sample processed since the last Reset.
// Power matches |X[k]|² of a DFT over the same samples when the frequency
// falls on a bin; otherwise the usual leakage applies.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	count      int
	s0, s1     float64
}

// NewGoertzel creates an analyzer for frequency Hz. frequency must be
// between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: goertzel sample rate must be > 0: %v", ErrInvalidArgument, sampleRate)
	}

	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("%w: goertzel frequency must be between 0 and sampleRate/2: %v",
			ErrInvalidArgument, frequency)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Frequency returns the analyzed frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate in Hz.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// Count returns the number of samples processed since the last Reset.
func (g *Goertzel) Count() int { return g.count }

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
	g.count = 0
}

// ProcessSample updates the state with one sample.
func (g *Goertzel) ProcessSample(x float64) {
	s := x + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.count++
}

// ProcessBlock updates the state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s0, s1 = x+coeff*s0-s1, s0
	}

	g.s0, g.s1 = s0, s1
	g.count += len(input)
}

// ProcessSeq consumes a whole sample sequence.
func (g *Goertzel) ProcessSeq(seq iter.Seq[float64]) {
	for x := range seq {
		g.ProcessSample(x)
	}
}

// Power returns the squared magnitude of the frequency component.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	return math.Sqrt(math.Max(0, g.Power()))
}

// Amplitude returns the peak amplitude of a sinusoid at the analyzed
// frequency, 2·Magnitude/Count. It is 0 before any sample is processed.
func (g *Goertzel) Amplitude() float64 {
	if g.count == 0 {
		return 0
	}

	return 2 * g.Magnitude() / float64(g.count)
}

// PowerDB returns the power in dB with a floor at -300 dB.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return floorDB
	}

	return 10 * math.Log10(p)
}
