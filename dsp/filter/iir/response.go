package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the cascade,
// gain included, at freqHz.
func (f *Filter) Response(freqHz float64) complex128 {
	w := 2 * math.Pi * freqHz / f.samplingRate
	z1 := cmplx.Exp(complex(0, -w))

	h := complex(f.gain, 0)
	for _, s := range f.stages {
		h *= s.response(z1)
	}

	return h
}

// MagnitudeDB returns the cascade magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz)))
}

// Phase returns the phase response in radians at freqHz.
func (f *Filter) Phase(freqHz float64) float64 {
	return cmplx.Phase(f.Response(freqHz))
}

// ImpulseResponse computes the first n samples of the cascade impulse
// response.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	r := f.NewRunner()
	ir := make([]float64, n)
	ir[0] = r.ProcessSample(1)

	for i := 1; i < n; i++ {
		ir[i] = r.ProcessSample(0)
	}

	return ir
}

// response evaluates the stage transfer function at z^-1 = z1:
//
//	H = Σ CoeffX[k]·z^-k / (1 - Σ CoeffY[k]·z^-(k+1))
func (s Stage) response(z1 complex128) complex128 {
	num := complex(0, 0)
	zk := complex(1, 0)

	for _, b := range s.CoeffX {
		num += complex(b, 0) * zk
		zk *= z1
	}

	den := complex(1, 0)
	zk = z1

	for _, a := range s.CoeffY {
		den -= complex(a, 0) * zk
		zk *= z1
	}

	return num / den
}
