// Package config holds the small set of knobs cmd/freecell-solver exposes:
// which deal source to use, the node budget, and the log level.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DealSource selects which deal.* collaborator produces the initial deck.
type DealSource string

const (
	DealSourceRandom DealSource = "random"
	DealSourceOCR    DealSource = "ocr"
)

// Config is the solver CLI's full set of runtime parameters.
type Config struct {
	DealSource  DealSource
	Seed        int64
	ScenePath   string
	TemplateDir string
	MaxNodes    int
	LogLevel    logrus.Level
}

// Default returns the configuration cmd/freecell-solver starts from before
// applying flags and environment overrides.
func Default() Config {
	return Config{
		DealSource: DealSourceRandom,
		Seed:       1,
		MaxNodes:   1_000_000,
		LogLevel:   logrus.InfoLevel,
	}
}

// Validate reports the first configuration error found, or nil if cfg is
// runnable.
func (cfg Config) Validate() error {
	switch cfg.DealSource {
	case DealSourceRandom, DealSourceOCR:
	default:
		return errors.Errorf("config: unknown deal source %q", cfg.DealSource)
	}
	if cfg.DealSource == DealSourceOCR {
		if cfg.ScenePath == "" {
			return errors.New("config: ocr deal source requires a scene path")
		}
		if cfg.TemplateDir == "" {
			return errors.New("config: ocr deal source requires a template directory")
		}
	}
	if cfg.MaxNodes <= 0 {
		return errors.Errorf("config: max_nodes must be positive, got %d", cfg.MaxNodes)
	}
	return nil
}

// ApplyEnv overrides cfg's seed from FREECELL_SEED when it is set and
// parses as an integer.
func (cfg Config) ApplyEnv() Config {
	if v, ok := os.LookupEnv("FREECELL_SEED"); ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}
