package iir

import "github.com/cwbudde/algo-vecmath"

// Runner is the block-processing form of a [Filter]. It owns one history per
// stage and produces the same samples as ranging over [Filter.Filter].
// A Runner is not safe for concurrent use.
type Runner struct {
	filter  *Filter
	history []history
}

// NewRunner returns a Runner with silent history.
func (f *Filter) NewRunner() *Runner {
	return &Runner{
		filter:  f,
		history: make([]history, len(f.stages)),
	}
}

// Filter returns the filter r runs.
func (r *Runner) Filter() *Filter { return r.filter }

// ProcessSample filters one input sample and returns the output.
func (r *Runner) ProcessSample(x float64) float64 {
	stages := r.filter.stages
	for i := range stages {
		x = r.history[i].step(&stages[i], x)
	}

	return x * r.filter.gain
}

// ProcessBlock filters buf in place.
func (r *Runner) ProcessBlock(buf []float64) {
	stages := r.filter.stages
	for i := range stages {
		h := &r.history[i]
		s := &stages[i]

		for j, x := range buf {
			buf[j] = h.step(s, x)
		}
	}

	if g := r.filter.gain; g != 1 {
		vecmath.ScaleBlock(buf, buf, g)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (r *Runner) ProcessBlockTo(dst, src []float64) {
	if len(dst) != len(src) {
		panic("iir: ProcessBlockTo length mismatch")
	}

	copy(dst, src)
	r.ProcessBlock(dst)
}

// Reset clears the history of every stage.
func (r *Runner) Reset() {
	clear(r.history)
}
