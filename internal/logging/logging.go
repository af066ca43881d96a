// Package logging builds the zap logger the CLI and solver use for
// structured diagnostics, one debug entry per solve stage (parse,
// normalize, finish); individual pivots are not logged.
package logging

import "go.uber.org/zap"

// New returns a development-mode zap logger (human-readable console
// output) unless quiet is set, in which case logging is reduced to
// warnings and above.
func New(quiet bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if quiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
