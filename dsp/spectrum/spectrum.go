package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/digitalfilters/dsp/core"
)

// floorDB is the level reported for bins with zero magnitude.
const floorDB = -300.0

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)

	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)

	return out
}

// MagnitudeDB returns 20·log10(|X[k]| / ref) for each bin. Empty bins are
// reported at -300 dB. ref must be positive.
func MagnitudeDB(in []complex128, ref float64) ([]float64, error) {
	if !(ref > 0) {
		return nil, fmt.Errorf("%w: reference magnitude must be > 0: %v", ErrInvalidArgument, ref)
	}

	out := Magnitude(in)
	for i, m := range out {
		out[i] = math.Max(floorDB, core.LinearToDB(m/ref))
	}

	return out, nil
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}

	return out
}

// BinFrequencies returns the frequency in Hz of each bin of a compact
// spectrum of numBins bins, as produced by fft.ForwardTransform from
// 2·(numBins-1) samples at sampleRate Hz.
func BinFrequencies(numBins int, sampleRate float64) ([]float64, error) {
	if numBins < 2 {
		return nil, fmt.Errorf("%w: compact spectrum needs at least 2 bins: %d", ErrInvalidArgument, numBins)
	}

	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidArgument, sampleRate)
	}

	spacing := sampleRate / float64(2*(numBins-1))

	out := make([]float64, numBins)
	for i := range out {
		out[i] = float64(i) * spacing
	}

	return out, nil
}
