package fft

import "math"

// minResolution is the smallest table that still has a full quadrant of
// cosine samples to reflect into the other three.
const minResolution = 4

// Twiddles is an immutable table of twiddle factors W^k_N = e^{-j2πk/N} for
// every power of two N up to Resolution.
//
// All tables share one buffer of 2*Resolution entries: W^k_N lives at index
// N+k. The Resolution-point table occupies the upper half and each coarser
// table is every second entry of the next finer one.
type Twiddles struct {
	resolution int
	table      []complex128
}

// NewTwiddles builds a twiddle table with n factors spaced equally around the
// unit circle. n must be a power of two of at least 4.
func NewTwiddles(n int) (*Twiddles, error) {
	if !IsPowerOfTwo(n) || n < minResolution {
		return nil, invalid("twiddle resolution must be a power of two >= %d: %d", minResolution, n)
	}

	return &Twiddles{
		resolution: n,
		table:      computeTwiddles(n),
	}, nil
}

// Resolution returns the number of twiddle factors per full turn.
func (t *Twiddles) Resolution() int {
	return t.resolution
}

// Twiddle returns W^k_n = e^{-j2πk/n}.
//
// n must be a power of two no larger than Resolution. k may be in [-n, n];
// negative values wrap by n and k == n is the same factor as k == 0.
func (t *Twiddles) Twiddle(k, n int) (complex128, error) {
	if !IsPowerOfTwo(n) {
		return 0, invalid("twiddle denominator must be a power of two: %d", n)
	}
	if n > t.resolution {
		return 0, invalid("twiddle denominator %d exceeds resolution %d", n, t.resolution)
	}
	if k < -n || k > n {
		return 0, invalid("twiddle numerator must be in [-%d, %d]: %d", n, n, k)
	}

	return t.at(k, n), nil
}

// at is Twiddle without validation, for the transform's inner loops.
func (t *Twiddles) at(k, n int) complex128 {
	if k < 0 {
		k += n
	}
	if k == n {
		k = 0
	}

	return t.table[n+k]
}

func computeTwiddles(n int) []complex128 {
	quarter := n >> 2
	table := make([]complex128, n<<1)

	cos := make([]float64, quarter+1)
	for i := range cos {
		cos[i] = math.Cos(2 * math.Pi * float64(i) / float64(n))
	}
	cos[quarter] = 0

	half := quarter << 1
	threeQuarters := half + quarter

	// sin(2πi/n) is the cosine reflected about the quarter point.
	for i := range quarter {
		c := cos[i]
		s := cos[quarter-i]
		table[n+i] = complex(c, -s)
		table[n+i+quarter] = complex(-s, -c)
		table[n+i+half] = complex(-c, s)
		table[n+i+threeQuarters] = complex(s, c)
	}

	for m := n >> 1; m > 0; m >>= 1 {
		for i := m; i < m<<1; i++ {
			table[i] = table[i<<1]
		}
	}

	return table
}
