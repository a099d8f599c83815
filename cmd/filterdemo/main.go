// Command filterdemo runs synthetic noise through a Butterworth low-pass and
// high-pass cascade and writes the resulting spectrum and audio.
//
// Usage:
//
//	filterdemo [flags]
//
// Defaults for every flag can be set through FILTERDEMO_* environment
// variables or a .env file in the working directory.
//
// Examples:
//
//	filterdemo
//	filterdemo -lp 300 -hp 50 -lp-order 4 -csv out.csv -wav out.wav
//	FILTERDEMO_WINDOW=hann filterdemo -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"
)

func main() {
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	logger := newLogger(cfg.Verbose)
	ctx := context.Background()

	if err == nil {
		err = run(ctx, logger, cfg)
	}
	if err != nil {
		err := xerrors.New(err)
		logger.ErrorContext(ctx, "filter demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, logger *slog.Logger, cfg config) error {
	logger.InfoContext(ctx, "running filter demo",
		slog.Float64("sampleRate", cfg.SampleRate),
		slog.Int("length", cfg.Length),
		slog.Float64("lowPassHz", cfg.LowPassHz),
		slog.Int("lowPassOrder", cfg.LowPassOrder),
		slog.Float64("highPassHz", cfg.HighPassHz),
		slog.Int("highPassOrder", cfg.HighPassOrder))

	res, err := runPipeline(ctx, logger, cfg)
	if err != nil {
		return err
	}

	peak := res.Spectrum.Peak()
	logger.InfoContext(ctx, "spectrum analyzed",
		slog.String("window", res.Spectrum.Window.String()),
		slog.Int("bins", len(res.Spectrum.Bins)),
		slog.Float64("peakHz", res.Spectrum.Frequencies[peak]))

	for _, p := range res.Probes {
		logger.InfoContext(ctx, "attenuation",
			slog.String("frequency", fmt.Sprintf("%.1f Hz", p.FrequencyHz)),
			slog.Float64("measuredDB", p.MeasuredDB),
			slog.Float64("designedDB", p.DesignedDB))
	}

	if cfg.CSVPath != "" {
		if err := writeCSV(cfg.CSVPath, res.Spectrum); err != nil {
			return err
		}
		logger.InfoContext(ctx, "spectrum written", slog.String("path", cfg.CSVPath))
	}

	if cfg.WAVPath != "" {
		if err := writeWAV(cfg.WAVPath, res.Output, int(cfg.SampleRate)); err != nil {
			return err
		}
		logger.InfoContext(ctx, "audio written", slog.String("path", cfg.WAVPath))
	}

	return nil
}
