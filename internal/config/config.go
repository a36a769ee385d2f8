// Package config carries the runtime knobs of the packet-generation
// core. Everything is optional: a zero Config gives a private-stream
// source with base seed 0 and sequential batch generation.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"ejecta/internal/errors"
)

// LegacyModeEnabled switches every packet source in the process to the
// historical shared-generator seeding path so that old regression
// fixtures reproduce bit for bit. It is consulted at each sampling call
// site. The legacy path mutates process-wide generator state and is not
// safe under concurrent simulation instances; leave this off outside of
// fixture replays.
var LegacyModeEnabled = false

// SetLegacyMode toggles the process-wide legacy seeding switch
func SetLegacyMode(enabled bool) {
	if enabled && !LegacyModeEnabled {
		log.Printf("legacy seeding mode enabled; packet sources will share the process-wide generator")
	}
	LegacyModeEnabled = enabled
}

// Config represents the packet-generation configuration
type Config struct {
	// BaseSeed seeds every source's private stream.
	BaseSeed uint64
	// LegacySecondSeed, when non-nil and legacy mode is on, reseeds the
	// process-wide generator at source construction.
	LegacySecondSeed *uint64
	// LegacyMode mirrors LegacyModeEnabled for env-driven setups.
	LegacyMode bool
	// Parallelism is the worker count for parallel batch generation.
	Parallelism int
}

// Load reads configuration from EJECTA_* environment variables and
// validates it. A .env file in the working directory is honored when
// present.
func Load() (*Config, error) {
	// Optional .env support; absence is not an error
	_ = godotenv.Load()

	config := &Config{
		Parallelism: 1,
	}

	baseSeed, err := getEnvUint64("EJECTA_BASE_SEED", 0)
	if err != nil {
		return nil, err
	}
	config.BaseSeed = baseSeed

	if raw := os.Getenv("EJECTA_LEGACY_SECOND_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, errors.Newf(errors.CodeInvalidConfig,
				"EJECTA_LEGACY_SECOND_SEED must be an unsigned integer, got %q", raw)
		}
		config.LegacySecondSeed = &seed
	}

	legacyMode, err := getEnvBool("EJECTA_LEGACY_MODE", false)
	if err != nil {
		return nil, err
	}
	config.LegacyMode = legacyMode

	parallelism, err := getEnvInt("EJECTA_PARALLELISM", 1)
	if err != nil {
		return nil, err
	}
	config.Parallelism = parallelism

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for internal consistency
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return errors.Newf(errors.CodeInvalidConfig,
			"parallelism must be at least 1, got %d", c.Parallelism)
	}
	if c.LegacySecondSeed != nil && !c.LegacyMode {
		return errors.New(errors.CodeInvalidConfig,
			"legacy second seed set without legacy mode")
	}
	return nil
}

// Apply installs the process-wide parts of the configuration
func (c *Config) Apply() {
	SetLegacyMode(c.LegacyMode)
}

func getEnvUint64(key string, fallback uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Newf(errors.CodeInvalidConfig,
			"%s must be an unsigned integer, got %q", key, raw)
	}
	return v, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Newf(errors.CodeInvalidConfig,
			"%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Newf(errors.CodeInvalidConfig,
			"%s must be a boolean, got %q", key, raw)
	}
	return v, nil
}
