package window

import (
	"fmt"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeExactBlackman
	TypeNuttall
	TypeBlackmanNuttall
	TypeBlackmanHarris
)

// Metadata holds spectral properties of a window type, derived from its
// cosine-sum coefficients except for the sidelobe level.
type Metadata struct {
	Name string
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// HighestSidelobe is the published highest sidelobe level in dB.
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

type definition struct {
	name     string
	coeffs   []float64 // a0, -a1, a2, -a3
	sidelobe float64
}

var definitions = map[Type]definition{
	TypeRectangular:     {"rectangular", []float64{1}, -13.26},
	TypeHann:            {"hann", []float64{0.5, -0.5}, -31.47},
	TypeHamming:         {"hamming", []float64{0.53836, -0.46164}, -42.7},
	TypeBlackman:        {"blackman", []float64{0.42, -0.5, 0.08}, -58.1},
	TypeExactBlackman:   {"exact-blackman", []float64{0.42659, -0.49656, 0.076849}, -68.2},
	TypeNuttall:         {"nuttall", []float64{0.355768, -0.487396, 0.144232, -0.012604}, -93.3},
	TypeBlackmanNuttall: {"blackman-nuttall", []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}, -98.1},
	TypeBlackmanHarris:  {"blackman-harris", []float64{0.35875, -0.48829, 0.14128, -0.01168}, -92.0},
}

// Types returns every supported window type in declaration order.
func Types() []Type {
	return []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
		TypeExactBlackman,
		TypeNuttall,
		TypeBlackmanNuttall,
		TypeBlackmanHarris,
	}
}

// String returns the window name, e.g. "blackman-harris".
func (t Type) String() string {
	if d, ok := definitions[t]; ok {
		return d.name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType looks up a window type by its name. Matching ignores case and
// surrounding space.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types() {
		if definitions[t].name == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown window %q", ErrInvalidArgument, name)
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	d, ok := definitions[t]
	if !ok {
		return Metadata{}
	}

	a0 := d.coeffs[0]
	power := a0 * a0
	for _, c := range d.coeffs[1:] {
		power += c * c / 2
	}

	return Metadata{
		Name:                d.name,
		ENBW:                power / (a0 * a0),
		HighestSidelobe:     d.sidelobe,
		CoherentGain:        a0,
		CoherentGainSquared: a0 * a0,
	}
}
