package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/digitalfilters/dsp/core"
	"github.com/cwbudde/digitalfilters/dsp/signal"
	"github.com/cwbudde/digitalfilters/dsp/spectrum"
)

const (
	pcmBitDepth  = 16
	pcmFullPeak  = 1<<(pcmBitDepth-1) - 1
	pcmHeadroom  = 0.9
	wavFormatPCM = 1
)

// writeCSV writes the spectrum as frequency/level rows with levels in dB
// relative to the strongest bin.
func writeCSV(path string, a *spectrum.Analysis) error {
	ref := a.Magnitudes[a.Peak()]
	if !(ref > 0) {
		ref = 1
	}
	points, err := a.PointsDB(ref)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frequency_hz", "level_db"}); err != nil {
		_ = f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 3, 64),
			strconv.FormatFloat(p.Y, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}

	return f.Close()
}

// toPCM16 normalizes samples below full scale and quantizes them to 16-bit
// integers.
func toPCM16(samples []float64) ([]int, error) {
	scaled, err := signal.Normalize(samples, pcmHeadroom)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(scaled))
	for i, v := range scaled {
		out[i] = int(math.Round(core.Clamp(v, -1, 1) * pcmFullPeak))
	}

	return out, nil
}

// writeWAV stores samples as a mono 16-bit PCM file.
func writeWAV(path string, samples []float64, sampleRate int) error {
	data, err := toPCM16(samples)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, pcmBitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: pcmBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finalize wav: %w", err)
	}

	return f.Close()
}
