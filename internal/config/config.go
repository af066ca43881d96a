// Package config loads solver tuning knobs (tolerance, iteration ceiling,
// default pivot rule): environment variables layered over defaults via
// viper.
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the solver's tunable parameters.
type Config struct {
	// Tolerance is the epsilon used by feasibility and positivity checks.
	// It must be explicit and applied consistently across every check.
	Tolerance float64

	// MaxIterations bounds pivots per phase; exceeding it is reported as
	// ErrIterationLimit rather than looping forever.
	MaxIterations int

	// Bland selects Bland's rule by default instead of the
	// largest-coefficient rule (the CLI's `-b`/`--bland` flag still
	// overrides this per invocation).
	Bland bool
}

// Load reads SIMPLEX_* environment variables over built-in defaults. No
// config file is required; env vars are purely optional overrides
// (SIMPLEX_TOLERANCE, SIMPLEX_MAX_ITERATIONS, SIMPLEX_BLAND).
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("SIMPLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("TOLERANCE", 1e-9)
	v.SetDefault("MAX_ITERATIONS", 10000)
	v.SetDefault("BLAND", false)

	cfg := &Config{
		Tolerance:     v.GetFloat64("TOLERANCE"),
		MaxIterations: v.GetInt("MAX_ITERATIONS"),
		Bland:         v.GetBool("BLAND"),
	}
	if cfg.Tolerance <= 0 {
		log.Printf("config: SIMPLEX_TOLERANCE must be positive, falling back to default 1e-9")
		cfg.Tolerance = 1e-9
	}
	if cfg.MaxIterations <= 0 {
		log.Printf("config: SIMPLEX_MAX_ITERATIONS must be positive, falling back to default 10000")
		cfg.MaxIterations = 10000
	}
	return cfg
}
