package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SIMPLEX_TOLERANCE", "SIMPLEX_MAX_ITERATIONS", "SIMPLEX_BLAND"} {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	assert.Equal(t, 1e-9, cfg.Tolerance)
	assert.Equal(t, 10000, cfg.MaxIterations)
	assert.False(t, cfg.Bland)
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("SIMPLEX_TOLERANCE", "1e-6")
	os.Setenv("SIMPLEX_MAX_ITERATIONS", "500")
	os.Setenv("SIMPLEX_BLAND", "true")

	cfg := Load()
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.True(t, cfg.Bland)
}

func TestLoadFallsBackOnNonPositiveOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("SIMPLEX_TOLERANCE", "-1")
	os.Setenv("SIMPLEX_MAX_ITERATIONS", "0")

	cfg := Load()
	assert.Equal(t, 1e-9, cfg.Tolerance)
	assert.Equal(t, 10000, cfg.MaxIterations)
}
