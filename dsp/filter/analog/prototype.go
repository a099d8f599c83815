package analog

import (
	"errors"

	"github.com/cwbudde/digitalfilters/dsp/poly"
)

// ErrInvalidArgument is returned for out-of-range prototype parameters or
// pole indices.
var ErrInvalidArgument = errors.New("analog: invalid argument")

// Prototype is an analog filter described by cascadable denominator sections.
type Prototype interface {
	// HighPass reports whether the filter is high-pass. High-pass filters
	// place Order zeros at the origin, i.e. a numerator of (s/CutOff)^Order.
	HighPass() bool

	// Order is the filter order, at least 1.
	Order() int

	// CutOff is the angular cutoff frequency in rad/s.
	CutOff() float64

	// Polynomials returns the first- and second-order denominator sections
	// in the normalized variable s/CutOff, in cascade order.
	Polynomials() []poly.ComplexPoly
}
