package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitudeAndPower(t *testing.T) {
	bins := []complex128{3 + 4i, -1, 2i, 0}

	assert.InDeltaSlice(t, []float64{5, 1, 2, 0}, Magnitude(bins), 1e-12)
	assert.InDeltaSlice(t, []float64{25, 1, 4, 0}, Power(bins), 1e-12)
	assert.Nil(t, Magnitude(nil))
	assert.Nil(t, Power(nil))
}

func TestMagnitude_LargeInputReusesScratch(t *testing.T) {
	bins := make([]complex128, 4097)
	for i := range bins {
		bins[i] = complex(float64(i), 0)
	}

	for range 3 {
		mag := Magnitude(bins)
		require.Len(t, mag, len(bins))
		assert.InDelta(t, 4096.0, mag[4096], 1e-9)
	}
}

func TestMagnitudeDB(t *testing.T) {
	db, err := MagnitudeDB([]complex128{2, 0.2, 0}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, -20, -300}, db, 1e-9)

	_, err = MagnitudeDB([]complex128{1}, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestPhase(t *testing.T) {
	got := Phase([]complex128{1, 1i, -1, -1i})
	assert.InDeltaSlice(t, []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2}, got, 1e-12)
	assert.Nil(t, Phase(nil))
}

func TestBinFrequencies(t *testing.T) {
	got, err := BinFrequencies(5, 8)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, got)

	got, err = BinFrequencies(32769, 2000)
	require.NoError(t, err)
	assert.InDelta(t, 1/32.768, got[1], 1e-12)
	assert.InDelta(t, 1000, got[32768], 1e-9)

	_, err = BinFrequencies(1, 8)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = BinFrequencies(4, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestPoints(t *testing.T) {
	pts, err := Points([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 3}, {2, 4}}, pts)

	_, err = Points([]float64{1}, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
