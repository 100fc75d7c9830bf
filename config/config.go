package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/busybeaver/gen"
	"github.com/katalvlaran/busybeaver/logging"
	"github.com/katalvlaran/busybeaver/tm"
)

// ErrInvalid is returned by Validate and Load for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full configuration of a search run.
type Config struct {
	// States is N, the number of states of the enumerated machines.
	States int `yaml:"states"`

	// Generator selects which machines are skipped.
	Generator gen.Opt `yaml:"generator"`

	// MaxSteps is the step ceiling of the dynamic analysis.
	MaxSteps uint32 `yaml:"max_steps"`

	// Workers is the number of analyzing goroutines.
	Workers int `yaml:"workers"`

	// ChunkSize is the number of machines per work item; 0 picks a size
	// based on States.
	ChunkSize uint64 `yaml:"chunk_size"`

	// NoProgress disables the progress line.
	NoProgress bool `yaml:"no_progress"`

	Histogram Histogram `yaml:"histogram"`

	// MetricsAddr, if set, serves prometheus metrics on this address.
	MetricsAddr string `yaml:"metrics_addr"`

	Log logging.Config `yaml:"log"`
}

// Histogram controls the step histogram of the report.
type Histogram struct {
	Hide bool `yaml:"hide"`

	// Height is the number of text rows.
	Height int `yaml:"height"`

	// Cutoff is the first step count not shown.
	Cutoff uint32 `yaml:"cutoff"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		States:    4,
		Generator: gen.AlsoSkipHaltZero,
		MaxSteps:  200,
		Workers:   runtime.NumCPU(),
		Histogram: Histogram{
			Height: 15,
			Cutoff: 30,
		},
		Log: logging.Config{Level: "info"},
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	var errs []error
	if c.States < 1 || c.States > tm.MaxStates {
		errs = append(errs, fmt.Errorf("%w: states %d not in 1..%d", ErrInvalid, c.States, tm.MaxStates))
	}
	if c.Generator > gen.AlsoSkipHaltZero {
		errs = append(errs, fmt.Errorf("%w: generator %s", ErrInvalid, c.Generator))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers %d must be positive", ErrInvalid, c.Workers))
	}
	if c.Histogram.Height < 2 {
		errs = append(errs, fmt.Errorf("%w: histogram height %d must be at least 2", ErrInvalid, c.Histogram.Height))
	}
	if c.Histogram.Cutoff < 2 {
		errs = append(errs, fmt.Errorf("%w: histogram cutoff %d must be at least 2", ErrInvalid, c.Histogram.Cutoff))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}
