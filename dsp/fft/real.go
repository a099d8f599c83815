package fft

import "math/cmplx"

// ForwardTransform transforms 2*Size real samples into Size+1 complex bins
// spanning DC through Nyquist inclusive.
//
// Even samples are packed into the real parts and odd samples into the
// imaginary parts of a Size-point complex transform; the two interleaved
// spectra are then separated using the conjugate symmetry of real sequences.
// The DC and Nyquist bins are purely real.
func (f *FFT) ForwardTransform(input []float64) ([]complex128, error) {
	if len(input) != f.size<<1 {
		return nil, invalid("real transform expects %d samples, got %d", f.size<<1, len(input))
	}

	packed := make([]complex128, f.size)
	for i := range packed {
		packed[i] = complex(input[i<<1], input[i<<1+1])
	}

	z := f.transform(packed, false)

	n := len(z)
	out := make([]complex128, n+1)
	for i := range n {
		k := (n - i) % n

		xpr := (real(z[i]) + real(z[k])) / 2
		xmr := (real(z[i]) - real(z[k])) / 2
		xpi := (imag(z[i]) + imag(z[k])) / 2
		xmi := (imag(z[i]) - imag(z[k])) / 2

		if i == 0 {
			out[0] = complex(xpr+xpi, 0)
			out[n] = complex(xpr-xpi, 0)
			continue
		}

		w := f.twiddles.at(i, n<<1)
		wr, wi := real(w), imag(w)
		out[i] = complex(xpr+wr*xpi+wi*xmr, xmi+wi*xpi-wr*xmr)
	}

	return out, nil
}

// InverseTransform converts a spectrum back to real time-domain samples.
//
// input is either a full Size-bin spectrum, or the compact Size/2+1-bin form
// produced for real signals, in which case the upper half is reconstructed as
// the conjugate mirror of the lower half. Only the real parts of the inverse
// transform are returned.
func (f *FFT) InverseTransform(input []complex128) ([]float64, error) {
	n := len(input)

	var spectrum []complex128

	switch {
	case IsPowerOfTwo(n):
		if n != f.size {
			return nil, invalid("inverse transform expects %d bins, got %d", f.size, n)
		}

		spectrum = input
	case IsPowerOfTwo(n - 1):
		full := (n - 1) << 1
		if full > f.twiddles.Resolution() || full != f.size {
			return nil, invalid("compact spectrum of %d bins needs a %d-point transform, have %d",
				n, full, f.size)
		}

		spectrum = make([]complex128, full)
		copy(spectrum, input)
		for i := 1; i < n-1; i++ {
			spectrum[full-i] = cmplx.Conj(spectrum[i])
		}
	default:
		return nil, invalid("spectrum length must be 2^m or 2^m+1: %d", n)
	}

	samples := f.transform(spectrum, true)

	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = real(s)
	}

	return out, nil
}
