package signal

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/rand"
	"slices"

	"github.com/cwbudde/digitalfilters/dsp/core"
	"github.com/cwbudde/digitalfilters/dsp/fft"
)

// ErrInvalidArgument is returned for negative durations, non-positive sample
// rates and unsupported synthetic noise lengths.
var ErrInvalidArgument = errors.New("signal: invalid argument")

// gaussianTerms is the number of uniform variates summed per Gaussian sample.
const gaussianTerms = 12

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used by the noise sources.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator with seed 1.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the noise seed for sequences created afterwards.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine returns duration samples of magnitude·sin(2π(phase/360 + f·n/fs)),
// with the phase in degrees and fs the configured sample rate.
func (g *Generator) Sine(freqHz, phaseDeg float64, duration int, magnitude float64) (iter.Seq[float64], error) {
	if err := checkDuration("sine", duration); err != nil {
		return nil, err
	}

	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sine sample rate must be > 0: %f", ErrInvalidArgument, g.cfg.SampleRate)
	}

	cycles := freqHz / g.cfg.SampleRate
	phase := phaseDeg / 360

	return func(yield func(float64) bool) {
		for i := range duration {
			if !yield(magnitude * math.Sin(2*math.Pi*(phase+float64(i)*cycles))) {
				return
			}
		}
	}, nil
}

// WhiteNoise returns duration samples of approximately Gaussian noise with
// standard deviation magnitude. Every iteration replays the same samples.
func (g *Generator) WhiteNoise(duration int, magnitude float64) (iter.Seq[float64], error) {
	if err := checkDuration("noise", duration); err != nil {
		return nil, err
	}

	seed := g.seed

	return func(yield func(float64) bool) {
		rng := rand.New(rand.NewSource(seed))

		for range duration {
			if !yield(gaussian(rng) * magnitude) {
				return
			}
		}
	}, nil
}

// gaussian sums uniform variates on [-1, 1) and scales the sum to unit
// variance.
func gaussian(rng *rand.Rand) float64 {
	v := 0.0
	for range gaussianTerms {
		v += 2*rng.Float64() - 1
	}

	return v / math.Sqrt(gaussianTerms/3.0)
}

// SyntheticNoise returns spectrally flat noise: every bin of a compact
// spectrum gets the given magnitude and a random phase, and the spectrum is
// converted with an inverse FFT. duration must be a power of two between
// fft.MinSize and fft.MaxSize.
func (g *Generator) SyntheticNoise(duration int, magnitude float64) (iter.Seq[float64], error) {
	if !fft.IsPowerOfTwo(duration) || duration < fft.MinSize || duration > fft.MaxSize {
		return nil, fmt.Errorf("%w: synthetic noise length must be a power of two in [%d, %d]: %d",
			ErrInvalidArgument, fft.MinSize, fft.MaxSize, duration)
	}

	t, err := fft.New(duration)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(g.seed))

	bins := make([]complex128, duration/2+1)
	for i := range bins {
		angle := 2 * math.Pi * rng.Float64()
		bins[i] = complex(magnitude*math.Cos(angle), magnitude*math.Sin(angle))
	}

	samples, err := t.InverseTransform(bins)
	if err != nil {
		return nil, err
	}

	return slices.Values(samples), nil
}

func checkDuration(name string, duration int) error {
	if duration < 0 {
		return fmt.Errorf("%w: %s duration must be >= 0: %d", ErrInvalidArgument, name, duration)
	}

	return nil
}
