package poly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/digitalfilters/internal/polyroot"
)

// ErrDegenerate is returned when roots are requested of a polynomial that
// has none or whose root iteration does not converge.
var ErrDegenerate = errors.New("poly: degenerate polynomial")

// Zero is the zero polynomial. Its order is -1.
var Zero = ComplexPoly{}

// ComplexPoly is a polynomial with complex128 coefficients in ascending
// powers of z.
type ComplexPoly struct {
	coeffs []complex128
}

// New returns a polynomial with the given coefficients, lowest power first.
// The coefficients are copied. Trailing zero coefficients are kept as given;
// New() with no arguments is the zero polynomial.
func New(coeffs ...complex128) ComplexPoly {
	if len(coeffs) == 0 {
		return Zero
	}

	return ComplexPoly{coeffs: append([]complex128(nil), coeffs...)}
}

// FromReal returns a polynomial with real coefficients, lowest power first.
func FromReal(coeffs ...float64) ComplexPoly {
	if len(coeffs) == 0 {
		return Zero
	}

	c := make([]complex128, len(coeffs))
	for i, v := range coeffs {
		c[i] = complex(v, 0)
	}

	return ComplexPoly{coeffs: c}
}

// Order returns the index of the highest stored coefficient, or -1 for the
// zero polynomial.
func (p ComplexPoly) Order() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p ComplexPoly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficient returns the coefficient of z^i, or 0 when i is outside
// [0, Order].
func (p ComplexPoly) Coefficient(i int) complex128 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficients, lowest power first.
func (p ComplexPoly) Coefficients() []complex128 {
	return append([]complex128(nil), p.coeffs...)
}

// Clone returns an independent copy of p.
func (p ComplexPoly) Clone() ComplexPoly {
	return New(p.coeffs...)
}

// MultiplyBy returns the product p*q. If either operand is the zero
// polynomial the result is the zero polynomial.
func (p ComplexPoly) MultiplyBy(q ComplexPoly) ComplexPoly {
	if p.Order() < 0 || q.Order() < 0 {
		return Zero
	}

	out := make([]complex128, p.Order()+q.Order()+1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}

	return ComplexPoly{coeffs: out}
}

// Add returns the normalized sum p+q.
func (p ComplexPoly) Add(q ComplexPoly) ComplexPoly {
	return p.combine(q, 1)
}

// Sub returns the normalized difference p-q.
func (p ComplexPoly) Sub(q ComplexPoly) ComplexPoly {
	return p.combine(q, -1)
}

func (p ComplexPoly) combine(q ComplexPoly, sign complex128) ComplexPoly {
	out := make([]complex128, max(len(p.coeffs), len(q.coeffs)))
	copy(out, p.coeffs)
	for i, c := range q.coeffs {
		out[i] += sign * c
	}

	return ComplexPoly{coeffs: trimTrailingZeros(out)}
}

func trimTrailingZeros(c []complex128) []complex128 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}

	return c[:n]
}

// Value evaluates p at z.
func (p ComplexPoly) Value(z complex128) complex128 {
	var result complex128

	zPower := complex(1, 0)
	for _, c := range p.coeffs {
		result += zPower * c
		zPower *= z
	}

	return result
}

// Roots returns the roots of p. Polynomials of order < 1 have no roots and
// return ErrDegenerate, as does a leading coefficient of zero.
func (p ComplexPoly) Roots() ([]complex128, error) {
	if p.Order() < 1 {
		return nil, fmt.Errorf("%w: order %d has no roots", ErrDegenerate, p.Order())
	}

	roots, err := polyroot.RootsAscending(p.coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}

	return roots, nil
}

// String formats p as a sum of terms, highest power first.
func (p ComplexPoly) String() string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteString(" + ")
		}

		fmt.Fprintf(&b, "%v", p.coeffs[i])
		switch i {
		case 0:
		case 1:
			b.WriteString("z")
		default:
			fmt.Fprintf(&b, "z^%d", i)
		}
	}

	return b.String()
}
