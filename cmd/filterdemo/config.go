package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
)

var errInvalidConfig = errors.New("filterdemo: invalid config")

// config holds the demo parameters. Flag defaults come from FILTERDEMO_*
// environment variables, which may be loaded from a .env file.
type config struct {
	SampleRate    float64
	Length        int
	Seed          int64
	LowPassHz     float64
	LowPassOrder  int
	HighPassHz    float64
	HighPassOrder int
	BlockSize     int
	Window        string
	CSVPath       string
	WAVPath       string
	Verbose       bool
}

func defaultConfig() config {
	return config{
		SampleRate:    2000,
		Length:        8192,
		Seed:          1,
		LowPassHz:     400,
		LowPassOrder:  7,
		HighPassHz:    100,
		HighPassOrder: 7,
		BlockSize:     512,
		Window:        "blackman-harris",
		CSVPath:       "spectrum.csv",
		WAVPath:       "filtered.wav",
	}
}

// parseConfig reads environment defaults through getenv and then applies
// command line flags.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()
	if err := applyEnv(&cfg, getenv); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("filterdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.SampleRate, "rate", cfg.SampleRate, "sampling rate in Hz")
	fs.IntVar(&cfg.Length, "n", cfg.Length, "number of noise samples (power of two)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	fs.Float64Var(&cfg.LowPassHz, "lp", cfg.LowPassHz, "low-pass cutoff in Hz")
	fs.IntVar(&cfg.LowPassOrder, "lp-order", cfg.LowPassOrder, "low-pass order")
	fs.Float64Var(&cfg.HighPassHz, "hp", cfg.HighPassHz, "high-pass cutoff in Hz")
	fs.IntVar(&cfg.HighPassOrder, "hp-order", cfg.HighPassOrder, "high-pass order")
	fs.IntVar(&cfg.BlockSize, "block", cfg.BlockSize, "processing block size")
	fs.StringVar(&cfg.Window, "window", cfg.Window, "analysis window")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "spectrum CSV output path (empty to skip)")
	fs.StringVar(&cfg.WAVPath, "wav", cfg.WAVPath, "filtered WAV output path (empty to skip)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func applyEnv(cfg *config, getenv func(string) string) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"FILTERDEMO_RATE", &cfg.SampleRate},
		{"FILTERDEMO_LOWPASS_HZ", &cfg.LowPassHz},
		{"FILTERDEMO_HIGHPASS_HZ", &cfg.HighPassHz},
	}
	for _, f := range floats {
		if v := getenv(f.key); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", errInvalidConfig, f.key, err)
			}
			*f.dst = parsed
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"FILTERDEMO_LENGTH", &cfg.Length},
		{"FILTERDEMO_LOWPASS_ORDER", &cfg.LowPassOrder},
		{"FILTERDEMO_HIGHPASS_ORDER", &cfg.HighPassOrder},
		{"FILTERDEMO_BLOCK_SIZE", &cfg.BlockSize},
	}
	for _, i := range ints {
		if v := getenv(i.key); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", errInvalidConfig, i.key, err)
			}
			*i.dst = parsed
		}
	}

	if v := getenv("FILTERDEMO_SEED"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: FILTERDEMO_SEED: %w", errInvalidConfig, err)
		}
		cfg.Seed = parsed
	}

	if v := getenv("FILTERDEMO_WINDOW"); v != "" {
		cfg.Window = v
	}
	if v, ok := lookup(getenv, "FILTERDEMO_CSV"); ok {
		cfg.CSVPath = v
	}
	if v, ok := lookup(getenv, "FILTERDEMO_WAV"); ok {
		cfg.WAVPath = v
	}

	return nil
}

// lookup treats "-" as an explicit request to disable an output.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	switch v {
	case "":
		return "", false
	case "-":
		return "", true
	default:
		return v, true
	}
}

func (c config) validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sampling rate must be > 0: %g", errInvalidConfig, c.SampleRate)
	case c.LowPassHz <= 0 || c.LowPassHz >= c.SampleRate/2:
		return fmt.Errorf("%w: low-pass cutoff must be in (0, %g): %g", errInvalidConfig, c.SampleRate/2, c.LowPassHz)
	case c.HighPassHz <= 0 || c.HighPassHz >= c.SampleRate/2:
		return fmt.Errorf("%w: high-pass cutoff must be in (0, %g): %g", errInvalidConfig, c.SampleRate/2, c.HighPassHz)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size must be > 0: %d", errInvalidConfig, c.BlockSize)
	}

	return nil
}
