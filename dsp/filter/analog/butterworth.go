package analog

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/digitalfilters/dsp/poly"
)

// Butterworth is a maximally flat analog low-pass or high-pass prototype.
//
// Its poles lie on the left half of the unit circle in the normalized
// s/CutOff plane. Conjugate pole pairs form second-order sections
// s^2 - 2Re(p)s + 1; an odd order adds one first-order section s + 1, placed
// last in the cascade.
type Butterworth struct {
	order    int
	cutOff   float64
	highPass bool
	sections []poly.ComplexPoly
}

var _ Prototype = (*Butterworth)(nil)

// NewButterworth designs a Butterworth prototype of the given order with an
// angular cutoff frequency in rad/s.
func NewButterworth(order int, cutOff float64, highPass bool) (*Butterworth, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: butterworth order must be >= 1: %d", ErrInvalidArgument, order)
	}
	if !(cutOff > 0) || math.IsInf(cutOff, 0) {
		return nil, fmt.Errorf("%w: butterworth cutoff must be > 0: %v", ErrInvalidArgument, cutOff)
	}

	b := &Butterworth{
		order:    order,
		cutOff:   cutOff,
		highPass: highPass,
	}
	b.sections = b.initSections()

	return b, nil
}

// HighPass reports whether b is a high-pass filter.
func (b *Butterworth) HighPass() bool { return b.highPass }

// Order returns the filter order.
func (b *Butterworth) Order() int { return b.order }

// CutOff returns the angular cutoff frequency in rad/s.
func (b *Butterworth) CutOff() float64 { return b.cutOff }

// Polynomials returns the normalized denominator sections in cascade order.
// The returned slice is a copy; the polynomials themselves are immutable.
func (b *Butterworth) Polynomials() []poly.ComplexPoly {
	return append([]poly.ComplexPoly(nil), b.sections...)
}

// DenormalizedPolynomials returns the sections as polynomials in s, with
// coefficient i scaled by CutOff^-i. Their roots are the poles moved out onto
// the circle of radius CutOff.
func (b *Butterworth) DenormalizedPolynomials() []poly.ComplexPoly {
	out := make([]poly.ComplexPoly, len(b.sections))
	for i, p := range b.sections {
		c := p.Coefficients()

		scale := 1.0
		for k := range c {
			c[k] *= complex(scale, 0)
			scale /= b.cutOff
		}

		out[i] = poly.New(c...)
	}

	return out
}

// Pole returns the location of pole index on the unit circle, i.e. for a
// cutoff of 1 rad/s. Indices 1..Order address the Order poles; index 0 is
// the mirror of pole 1 across the imaginary axis, so callers iterating
// 0..Order-1 still see pole placements of the same family.
func (b *Butterworth) Pole(index int) (complex128, error) {
	if index < 0 || index > b.order {
		return 0, fmt.Errorf("%w: pole index must be in [0, %d]: %d", ErrInvalidArgument, b.order, index)
	}

	return b.pole(index), nil
}

func (b *Butterworth) pole(index int) complex128 {
	theta := math.Pi * float64(2*index+b.order-1) / float64(2*b.order)
	return complex(math.Cos(theta), math.Sin(theta))
}

// OutputAtFrequency evaluates the product of the denominator sections at
// s = jω, i.e. each section at jω/CutOff. Its magnitude is 1 at DC and √2 at
// the cutoff; the transfer function gain is the reciprocal.
func (b *Butterworth) OutputAtFrequency(omega float64) complex128 {
	s := complex(0, omega/b.cutOff)

	v := complex(1, 0)
	for _, p := range b.sections {
		v *= p.Value(s)
	}

	return v
}

// GainAtFrequency returns the magnitude of the transfer function at ω rad/s,
// including the high-pass numerator (ω/CutOff)^Order when HighPass is set.
func (b *Butterworth) GainAtFrequency(omega float64) float64 {
	g := 1 / cmplx.Abs(b.OutputAtFrequency(omega))
	if b.highPass {
		g *= math.Pow(math.Abs(omega)/b.cutOff, float64(b.order))
	}

	return g
}

func (b *Butterworth) initSections() []poly.ComplexPoly {
	count := (b.order + 1) / 2
	sections := make([]poly.ComplexPoly, count)

	for i := 1; i <= b.order/2; i++ {
		p := b.pole(i)
		sections[i-1] = poly.FromReal(1, -2*real(p), 1)
	}

	if b.order%2 != 0 {
		sections[count-1] = poly.FromReal(1, 1)
	}

	return sections
}
