// Package config loads runtime settings from the environment.
//
// An optional .env file is read first. Variables already present in the
// process environment win over the file, and command-line flags win over
// both (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/litescript/ls-orrery/internal/astro"
)

// DefaultEnvFile is read when Load is called without arguments.
const DefaultEnvFile = ".env"

// Config holds environment-backed settings.
type Config struct {
	Seed         string        `env:"ORRERY_SEED"`
	LogLevel     string        `env:"ORRERY_LOG_LEVEL" envDefault:"info"`
	LogFile      string        `env:"ORRERY_LOG_FILE"`
	TimeScale    float64       `env:"ORRERY_TIME_SCALE" envDefault:"1"`
	TickInterval time.Duration `env:"ORRERY_TICK" envDefault:"50ms"`
	ScaleMode    string        `env:"ORRERY_SCALE" envDefault:"sqrt"`
	ShareURL     string        `env:"ORRERY_SHARE_URL" envDefault:"http://localhost:8080/"`
}

const (
	minTick = 10 * time.Millisecond
	maxTick = time.Second
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the given env files (or .env), then parses and validates the
// environment. Missing env files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TimeScale <= 0 {
		return fmt.Errorf("time scale must be positive, got %v", c.TimeScale)
	}
	if c.TickInterval < minTick || c.TickInterval > maxTick {
		return fmt.Errorf("tick interval %v outside [%v, %v]", c.TickInterval, minTick, maxTick)
	}
	if _, ok := astro.ParseScaleMode(c.ScaleMode); !ok {
		return fmt.Errorf("unknown scale mode %q", c.ScaleMode)
	}
	if _, err := url.Parse(c.ShareURL); err != nil {
		return fmt.Errorf("share url: %w", err)
	}
	return nil
}

// Scale returns the parsed scale mode.
func (c Config) Scale() astro.ScaleMode {
	m, _ := astro.ParseScaleMode(c.ScaleMode)
	return m
}
