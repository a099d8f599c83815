package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/digitalfilters/dsp/window"
	"github.com/cwbudde/digitalfilters/internal/testutil"
)

func TestGoertzel_MatchesDFT(t *testing.T) {
	const (
		sampleRate = 48000.0
		freq       = 1000.0
	)

	sig := testutil.DeterministicSine(freq, sampleRate, 1, 1024)

	g, err := NewGoertzel(freq, sampleRate)
	require.NoError(t, err)
	g.ProcessBlock(sig)

	var dft complex128
	for n, x := range sig {
		dft += complex(x, 0) * cmplx.Exp(complex(0, -2*math.Pi*freq/sampleRate*float64(n)))
	}

	want := cmplx.Abs(dft)
	assert.InDelta(t, want*want, g.Power(), 1e-7*want*want)
	assert.InDelta(t, want, g.Magnitude(), 1e-7*want)
	assert.Equal(t, 1024, g.Count())
}

func TestGoertzel_MatchesAnalyzeBin(t *testing.T) {
	const n = 512

	x := testutil.DeterministicNoise(2, 1, n)

	a, err := Analyze(x, n, window.TypeRectangular)
	require.NoError(t, err)

	g, err := NewGoertzel(37, n)
	require.NoError(t, err)
	g.ProcessSeq(slices.Values(x))

	assert.InDelta(t, a.Magnitudes[37], g.Magnitude(), 1e-9)
}

func TestGoertzel_SampleAndBlockAgree(t *testing.T) {
	sig := testutil.DeterministicNoise(8, 1, 300)

	a, err := NewGoertzel(440, 8000)
	require.NoError(t, err)
	b, err := NewGoertzel(440, 8000)
	require.NoError(t, err)

	for _, x := range sig {
		a.ProcessSample(x)
	}
	b.ProcessBlock(sig)

	assert.InDelta(t, a.Power(), b.Power(), 1e-9*a.Power())
	assert.Equal(t, a.Count(), b.Count())
}

func TestGoertzel_Amplitude(t *testing.T) {
	g, err := NewGoertzel(250, 8000)
	require.NoError(t, err)
	assert.Zero(t, g.Amplitude())

	g.ProcessBlock(testutil.DeterministicSine(250, 8000, 0.3, 3200))
	assert.InDelta(t, 0.3, g.Amplitude(), 1e-9)
	assert.InDelta(t, 20*math.Log10(0.3*1600), g.PowerDB(), 1e-6)
}

func TestGoertzel_Reset(t *testing.T) {
	g, err := NewGoertzel(1000, 48000)
	require.NoError(t, err)

	g.ProcessSample(1)
	assert.NotZero(t, g.Power())

	g.Reset()
	assert.Zero(t, g.Power())
	assert.Zero(t, g.Count())
	assert.Equal(t, -300.0, g.PowerDB())
	assert.Equal(t, 1000.0, g.Frequency())
	assert.Equal(t, 48000.0, g.SampleRate())
}

func TestNewGoertzel_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		freq, rate float64
	}{
		{"zero rate", 100, 0},
		{"nan rate", 100, math.NaN()},
		{"inf rate", 100, math.Inf(1)},
		{"negative frequency", -1, 1000},
		{"above nyquist", 501, 1000},
		{"nan frequency", math.NaN(), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGoertzel(tt.freq, tt.rate)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}
