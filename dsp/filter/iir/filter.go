package iir

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/cwbudde/digitalfilters/dsp/filter/analog"
)

// ErrInvalidArgument is returned for invalid sampling rates and for
// prototypes with sections other than first or second order.
var ErrInvalidArgument = errors.New("iir: invalid argument")

// Filter is a digital IIR filter derived from an analog prototype. It is
// immutable and safe for concurrent use; every call to [Filter.Filter] or
// [Filter.NewRunner] starts from silent history.
type Filter struct {
	prototype    analog.Prototype
	samplingRate float64
	gain         float64
	stages       []Stage
}

type config struct {
	gain float64
}

// Option configures a Filter.
type Option func(*config)

// WithGain sets a gain applied to the output of the last stage.
// Default is 1.0 (unity gain).
func WithGain(g float64) Option {
	return func(cfg *config) { cfg.gain = g }
}

// New realizes proto at samplingRate Hz. One stage is derived per prototype
// section, in the prototype's cascade order.
func New(proto analog.Prototype, samplingRate float64, opts ...Option) (*Filter, error) {
	if proto == nil {
		return nil, fmt.Errorf("%w: nil prototype", ErrInvalidArgument)
	}

	if !(samplingRate > 0) || math.IsInf(samplingRate, 0) {
		return nil, fmt.Errorf("%w: sampling rate must be > 0: %v", ErrInvalidArgument, samplingRate)
	}

	cfg := config{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := math.Tan(proto.CutOff() / (2 * samplingRate))

	sections := proto.Polynomials()
	stages := make([]Stage, len(sections))

	for i, p := range sections {
		s, err := newStage(p, c, proto.HighPass())
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}

		stages[i] = s
	}

	return &Filter{
		prototype:    proto,
		samplingRate: samplingRate,
		gain:         cfg.gain,
		stages:       stages,
	}, nil
}

// Prototype returns the analog prototype the filter was derived from.
func (f *Filter) Prototype() analog.Prototype { return f.prototype }

// SamplingRate returns the sampling rate in Hz.
func (f *Filter) SamplingRate() float64 { return f.samplingRate }

// Gain returns the output gain.
func (f *Filter) Gain() float64 { return f.gain }

// NumStages returns the number of cascade stages.
func (f *Filter) NumStages() int { return len(f.stages) }

// Stages returns a copy of the cascade stages.
func (f *Filter) Stages() []Stage {
	out := make([]Stage, len(f.stages))
	for i, s := range f.stages {
		out[i] = s.clone()
	}

	return out
}

// Filter lazily filters src. Each stage wraps the sequence produced by the
// previous one, and the gain is applied to the last stage's output. History
// is scoped to a single iteration: ranging over the result twice filters src
// twice from silence.
func (f *Filter) Filter(src iter.Seq[float64]) iter.Seq[float64] {
	seq := src
	for i := range f.stages {
		seq = applyStage(&f.stages[i], seq)
	}

	if f.gain == 1 {
		return seq
	}

	gain := f.gain

	return func(yield func(float64) bool) {
		for y := range seq {
			if !yield(y * gain) {
				return
			}
		}
	}
}

// FilterSlice filters src from silence and returns the output samples.
func (f *Filter) FilterSlice(src []float64) []float64 {
	out := make([]float64, len(src))
	f.NewRunner().ProcessBlockTo(out, src)

	return out
}

func applyStage(s *Stage, src iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		var h history

		for x := range src {
			if !yield(h.step(s, x)) {
				return
			}
		}
	}
}
