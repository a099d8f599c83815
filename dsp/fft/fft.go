package fft

const (
	// MinSize is the smallest supported transform length.
	MinSize = 4
	// MaxSize is the largest supported transform length.
	MaxSize = 65536
)

// FFT performs forward and inverse transforms of one fixed length.
//
// An FFT holds no mutable state after construction and may be shared between
// goroutines.
type FFT struct {
	twiddles *Twiddles
	size     int
	numBits  int
}

// New creates a transform for numSamples complex samples. numSamples must be
// a power of two between MinSize and MaxSize inclusive.
func New(numSamples int) (*FFT, error) {
	if !IsPowerOfTwo(numSamples) || numSamples < MinSize || numSamples > MaxSize {
		return nil, invalid("transform size must be a power of two in [%d, %d]: %d",
			MinSize, MaxSize, numSamples)
	}

	// Twice the resolution so that a 2N real-sample forward transform has
	// the 2N-point factors it needs for unmixing.
	tw, err := NewTwiddles(numSamples << 1)
	if err != nil {
		return nil, err
	}

	bits := 0
	for n := numSamples; n > 1; n >>= 1 {
		bits++
	}

	return &FFT{
		twiddles: tw,
		size:     numSamples,
		numBits:  bits,
	}, nil
}

// Size returns the complex transform length.
func (f *FFT) Size() int {
	return f.size
}

// Twiddles returns the twiddle table used by the transform.
func (f *FFT) Twiddles() *Twiddles {
	return f.twiddles
}

// Transform computes the forward (inverse == false) or inverse DFT of input
// using decimation in time. len(input) must equal Size. input is not
// modified; the result is a new slice.
func (f *FFT) Transform(input []complex128, inverse bool) ([]complex128, error) {
	if len(input) != f.size {
		return nil, invalid("transform expects %d samples, got %d", f.size, len(input))
	}

	return f.transform(input, inverse), nil
}

func (f *FFT) transform(input []complex128, inverse bool) []complex128 {
	n := len(input)
	samples := make([]complex128, n)

	// The first two stages only ever multiply by ±1 and ±j.
	j := complex(0, 1)
	if inverse {
		j = -j
	}

	for i := 0; i < n; i += 4 {
		pAddQ := input[f.bitReverse(i)]
		lower := input[f.bitReverse(i+1)]
		pSubQ := pAddQ - lower
		pAddQ += lower

		rAddS := input[f.bitReverse(i+2)]
		lower = input[f.bitReverse(i+3)]
		rSubS := rAddS - lower
		rAddS += lower

		samples[i] = pAddQ + rAddS
		samples[i+1] = pSubQ - j*rSubS
		samples[i+2] = pAddQ - rAddS
		samples[i+3] = pSubQ + j*rSubS
	}

	for groupSize := 8; groupSize <= n; groupSize <<= 1 {
		numGroups := n / groupSize
		halfGroup := groupSize >> 1

		for group := range numGroups {
			base := group * groupSize
			for i := range halfGroup {
				k := i
				if inverse {
					k = -i
				}

				upper := base + i
				lower := upper + halfGroup
				wq := samples[lower] * f.twiddles.at(k*numGroups, n)
				samples[lower] = samples[upper] - wq
				samples[upper] += wq
			}
		}
	}

	if inverse {
		scale := complex(1/float64(n), 0)
		for i := range samples {
			samples[i] *= scale
		}
	}

	return samples
}

func (f *FFT) bitReverse(i int) int {
	result := 0
	for bit := 1 << (f.numBits - 1); bit > 0; bit >>= 1 {
		if i&1 != 0 {
			result |= bit
		}
		i >>= 1
	}

	return result
}
