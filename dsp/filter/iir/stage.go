package iir

import (
	"fmt"

	"github.com/cwbudde/digitalfilters/dsp/poly"
)

// Stage holds the taps of one first- or second-order cascade section:
//
//	y[n] = Σ CoeffX[k]·x[n-k] + Σ CoeffY[k]·y[n-1-k]
//
// CoeffX has order+1 entries and CoeffY has order entries. Note the feedback
// taps are added, not subtracted.
type Stage struct {
	CoeffX []float64
	CoeffY []float64
}

// Order returns the section order, 1 or 2.
func (s Stage) Order() int { return len(s.CoeffY) }

func (s Stage) clone() Stage {
	return Stage{
		CoeffX: append([]float64(nil), s.CoeffX...),
		CoeffY: append([]float64(nil), s.CoeffY...),
	}
}

// newStage derives the digital taps of an analog section given in the
// normalized variable s/CutOff, with c = tan(CutOff/(2·SamplingRate)).
func newStage(p poly.ComplexPoly, c float64, highPass bool) (Stage, error) {
	switch p.Order() {
	case 1:
		return firstOrder(p, c, highPass), nil
	case 2:
		return secondOrder(p, c, highPass), nil
	default:
		return Stage{}, fmt.Errorf("%w: only first and second order sections are supported, got order %d",
			ErrInvalidArgument, p.Order())
	}
}

func firstOrder(p poly.ComplexPoly, c float64, highPass bool) Stage {
	b0, b1 := 1.0, 0.0
	if highPass {
		b0, b1 = 0, 1
	}

	a0 := real(p.Coefficient(0))
	a1 := real(p.Coefficient(1))

	denom := a1 + a0*c

	return Stage{
		CoeffX: []float64{
			(b0*c + b1) / denom,
			(b0*c - b1) / denom,
		},
		CoeffY: []float64{
			-(a0*c - a1) / denom,
		},
	}
}

func secondOrder(p poly.ComplexPoly, c float64, highPass bool) Stage {
	b0, b2 := 1.0, 0.0
	if highPass {
		b0, b2 = 0, 1
	}

	a0 := real(p.Coefficient(0))
	a1 := real(p.Coefficient(1))
	a2 := real(p.Coefficient(2))

	denom := a2 + (a1+a0*c)*c
	x0 := (b2 + b0*c*c) / denom

	return Stage{
		CoeffX: []float64{
			x0,
			2 * (b0*c*c - b2) / denom,
			x0,
		},
		CoeffY: []float64{
			-2 * (a0*c*c - a2) / denom,
			-(a2 + (a0*c-a1)*c) / denom,
		},
	}
}

// history is the per-stage direct form I delay line.
type history struct {
	x1, x2 float64
	y1, y2 float64
}

func (h *history) step(s *Stage, x float64) float64 {
	y := x*s.CoeffX[0] + h.x1*s.CoeffX[1] + h.y1*s.CoeffY[0]
	if len(s.CoeffY) > 1 {
		y += h.x2*s.CoeffX[2] + h.y2*s.CoeffY[1]
		h.x2 = h.x1
		h.y2 = h.y1
	}

	h.x1 = x
	h.y1 = y

	return y
}
