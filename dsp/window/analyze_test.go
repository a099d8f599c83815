package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Rectangular(t *testing.T) {
	a := Analyze(Generate(TypeRectangular, 256))

	assert.InDelta(t, 1.0, a.CoherentGain, 1e-12)
	assert.InDelta(t, 1.0, a.ENBW, 1e-12)
	assert.InDelta(t, 0.886, a.Bandwidth3dB, 0.01)
	assert.InDelta(t, 1.0, a.FirstMinimumBins, 0.01)
	assert.InDelta(t, -13.26, a.HighestSidelobedB, 0.1)
	assert.InDelta(t, -3.92, a.ScallopLossdB, 0.01)
}

func TestAnalyze_Hann(t *testing.T) {
	a := Analyze(Generate(TypeHann, 256, WithPeriodic()))

	assert.InDelta(t, 0.5, a.CoherentGain, 1e-12)
	assert.InDelta(t, 1.5, a.ENBW, 1e-9)
	assert.InDelta(t, 1.44, a.Bandwidth3dB, 0.01)
	assert.InDelta(t, 2.0, a.FirstMinimumBins, 0.01)
	assert.InDelta(t, -31.47, a.HighestSidelobedB, 0.1)
	assert.InDelta(t, -1.42, a.ScallopLossdB, 0.01)
}

func TestAnalyze_SidelobeOrdering(t *testing.T) {
	hann := Analyze(Generate(TypeHann, 512, WithPeriodic()))
	blackman := Analyze(Generate(TypeBlackman, 512, WithPeriodic()))
	harris := Analyze(Generate(TypeBlackmanHarris, 512, WithPeriodic()))

	assert.InDelta(t, Info(TypeBlackman).HighestSidelobe, blackman.HighestSidelobedB, 0.5)
	assert.Less(t, blackman.HighestSidelobedB, hann.HighestSidelobedB)
	assert.Less(t, harris.HighestSidelobedB, blackman.HighestSidelobedB)
	assert.Greater(t, harris.FirstMinimumBins, blackman.FirstMinimumBins)
}

func TestAnalyze_Empty(t *testing.T) {
	assert.Equal(t, Analysis{}, Analyze(nil))
	assert.Equal(t, Analysis{}, Analyze([]float64{0, 0, 0}))
}
