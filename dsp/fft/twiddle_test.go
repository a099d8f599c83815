package fft

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTwiddlesRejectsBadResolution(t *testing.T) {
	for _, n := range []int{-8, 0, 1, 2, 3, 6, 12, 100} {
		_, err := NewTwiddles(n)
		assert.ErrorIsf(t, err, ErrInvalidArgument, "n=%d", n)
	}
}

func TestTwiddleValues(t *testing.T) {
	tests := []struct {
		name       string
		resolution int
		k, n       int
		want       complex128
	}{
		{"small", 16, 0, 8, complex(1, 0)},
		{"mid angle", 32, 7, 32, complex(0.1951, -0.9808)},
		{"edge angle", 32, 31, 32, complex(0.9808, 0.1951)},
		{"zero", 32, 0, 32, complex(1, 0)},
		{"half turn", 32, 16, 32, complex(-1, 0)},
		{"negative edge", 32, -31, 32, complex(0.9808, -0.1951)},
		{"full turn", 32, 32, 32, complex(1, 0)},
		{"negative half turn", 32, -16, 32, complex(-1, 0)},
		{"scaled 8", 256, 7, 8, complex(0.7071, 0.7071)},
		{"scaled 16", 256, 14, 16, complex(0.7071, 0.7071)},
		{"scaled 256", 256, 224, 256, complex(0.7071, 0.7071)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw, err := NewTwiddles(tt.resolution)
			require.NoError(t, err)

			got, err := tw.Twiddle(tt.k, tt.n)
			require.NoError(t, err)
			assert.InDelta(t, real(tt.want), real(got), 1e-4)
			assert.InDelta(t, imag(tt.want), imag(got), 1e-4)
		})
	}
}

func TestTwiddleIdentities(t *testing.T) {
	tw, err := NewTwiddles(1024)
	require.NoError(t, err)
	assert.Equal(t, 1024, tw.Resolution())

	for n := 4; n <= 1024; n <<= 1 {
		one, err := tw.Twiddle(0, n)
		require.NoError(t, err)
		assert.Equal(t, complex(1, 0), one)

		full, err := tw.Twiddle(n, n)
		require.NoError(t, err)
		assert.Equal(t, one, full)

		half, err := tw.Twiddle(n/2, n)
		require.NoError(t, err)
		assert.InDelta(t, -1, real(half), 1e-15)
		assert.InDelta(t, 0, imag(half), 1e-15)

		for k := 1; k < n; k++ {
			pos, err := tw.Twiddle(k, n)
			require.NoError(t, err)
			neg, err := tw.Twiddle(-k, n)
			require.NoError(t, err)
			assert.InDelta(t, 0, cmplx.Abs(neg-cmplx.Conj(pos)), 1e-15)

			want := cmplx.Exp(complex(0, -2*3.141592653589793*float64(k)/float64(n)))
			assert.InDelta(t, 0, cmplx.Abs(pos-want), 1e-12)
		}
	}
}

func TestTwiddleRejectsBadArguments(t *testing.T) {
	tw, err := NewTwiddles(32)
	require.NoError(t, err)

	tests := []struct {
		name string
		k, n int
	}{
		{"non power of two", 1, 12},
		{"zero denominator", 0, 0},
		{"above resolution", 1, 64},
		{"numerator too large", 33, 32},
		{"numerator too small", -33, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tw.Twiddle(tt.k, tt.n)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
