package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	require.Len(t, s, 48)
	assert.InDelta(t, 0, s[0], 1e-15)
	for i, v := range s {
		assert.Truef(t, v >= -1 && v <= 1, "s[%d] = %v out of range", i, v)
	}
}

func TestCycleSine(t *testing.T) {
	s := CycleSine(1, 2, 8)
	require.Len(t, s, 8)
	assert.InDelta(t, 2, s[2], 1e-12)
	assert.InDelta(t, -2, s[6], 1e-12)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, DeterministicNoise(43, 1.0, 64))
}

func TestDeterministicComplexNoise(t *testing.T) {
	a := DeterministicComplexNoise(7, 1.0, 16)
	b := DeterministicComplexNoise(7, 1.0, 16)
	assert.Equal(t, a, b)
}

func TestImpulse(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0, 1, 0}, Impulse(5, 3))
	assert.Equal(t, []float64{0, 0, 0, 0}, Impulse(4, 10))
}

func TestDC(t *testing.T) {
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, DC(0.5, 3))
}
