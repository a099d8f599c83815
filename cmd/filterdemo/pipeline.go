package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/cwbudde/digitalfilters/dsp/core"
	"github.com/cwbudde/digitalfilters/dsp/filter/analog"
	"github.com/cwbudde/digitalfilters/dsp/filter/iir"
	"github.com/cwbudde/digitalfilters/dsp/signal"
	"github.com/cwbudde/digitalfilters/dsp/spectrum"
	"github.com/cwbudde/digitalfilters/dsp/window"
)

// probe compares the measured and designed attenuation of the cascade at
// one frequency.
type probe struct {
	FrequencyHz float64
	MeasuredDB  float64
	DesignedDB  float64
}

type result struct {
	Input    []float64
	Output   []float64
	Spectrum *spectrum.Analysis
	Probes   []probe
}

// designFilter builds a Butterworth IIR filter with its cutoff given in Hz.
func designFilter(order int, cutOffHz, sampleRate float64, highPass bool) (*iir.Filter, error) {
	proto, err := analog.NewButterworth(order, 2*math.Pi*cutOffHz, highPass)
	if err != nil {
		return nil, err
	}

	return iir.New(proto, sampleRate)
}

// runPipeline generates synthetic noise, passes it through a low-pass and a
// high-pass Butterworth filter block by block, and analyzes the result.
func runPipeline(ctx context.Context, logger *slog.Logger, cfg config) (*result, error) {
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate), core.WithBlockSize(cfg.BlockSize)},
		signal.WithSeed(cfg.Seed),
	)

	noise, err := gen.SyntheticNoise(cfg.Length, 1)
	if err != nil {
		return nil, fmt.Errorf("generate noise: %w", err)
	}
	input := slices.Collect(noise)

	lowPass, err := designFilter(cfg.LowPassOrder, cfg.LowPassHz, cfg.SampleRate, false)
	if err != nil {
		return nil, fmt.Errorf("low-pass: %w", err)
	}
	highPass, err := designFilter(cfg.HighPassOrder, cfg.HighPassHz, cfg.SampleRate, true)
	if err != nil {
		return nil, fmt.Errorf("high-pass: %w", err)
	}
	logger.DebugContext(ctx, "filters designed",
		slog.Int("lowPassStages", lowPass.NumStages()),
		slog.Int("highPassStages", highPass.NumStages()))

	output := slices.Clone(input)
	lp, hp := lowPass.NewRunner(), highPass.NewRunner()
	for _, blk := range gen.Config().Blocks(len(output)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf := output[blk[0]:blk[1]]
		lp.ProcessBlock(buf)
		hp.ProcessBlock(buf)
	}

	wt, err := window.ParseType(cfg.Window)
	if err != nil {
		return nil, err
	}
	analysis, err := spectrum.Analyze(output, cfg.SampleRate, wt)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	probes, err := measureProbes(input, output, cfg, lowPass, highPass)
	if err != nil {
		return nil, err
	}

	return &result{
		Input:    input,
		Output:   output,
		Spectrum: analysis,
		Probes:   probes,
	}, nil
}

// probeFrequencies returns a stop-band point below the high-pass cutoff, the
// geometric centre of the pass band and a stop-band point above the low-pass
// cutoff. Each is snapped to the nearest DFT bin of the noise block.
func probeFrequencies(cfg config) []float64 {
	nyquist := cfg.SampleRate / 2
	resolution := cfg.SampleRate / float64(cfg.Length)

	freqs := []float64{
		cfg.HighPassHz / 2,
		math.Sqrt(cfg.HighPassHz * cfg.LowPassHz),
		(cfg.LowPassHz + nyquist) / 2,
	}
	for i, hz := range freqs {
		freqs[i] = math.Round(hz/resolution) * resolution
	}

	return freqs
}

func measureProbes(input, output []float64, cfg config, filters ...*iir.Filter) ([]probe, error) {
	freqs := probeFrequencies(cfg)
	probes := make([]probe, 0, len(freqs))

	for _, hz := range freqs {
		in, err := spectrum.NewGoertzel(hz, cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		out, err := spectrum.NewGoertzel(hz, cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		in.ProcessBlock(input)
		out.ProcessBlock(output)

		designed := 0.0
		for _, f := range filters {
			designed += f.MagnitudeDB(hz)
		}

		probes = append(probes, probe{
			FrequencyHz: hz,
			MeasuredDB:  10 * math.Log10(out.Power()/in.Power()),
			DesignedDB:  designed,
		})
	}

	return probes, nil
}
