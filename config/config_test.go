package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var keys = []string{
	"RW_WIDTH", "RW_HEIGHT", "RW_STEPS", "RW_MAX_ATTEMPTS", "RW_SEED",
	"RW_WALKS", "RW_WORKERS", "RW_LOG_LEVEL", "RW_OUT_DIR",
}

// clearEnv unsets every variable Load reads; t.Setenv first so the original
// values come back after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	require.Equal(t, 100, cfg.Width)
	require.Equal(t, 100, cfg.Height)
	require.Equal(t, 200, cfg.Steps)
	require.Equal(t, 1000, cfg.MaxAttempts)
	require.Equal(t, uint64(0), cfg.Seed)
	require.Equal(t, 30, cfg.Walks)
	require.Equal(t, 0, cfg.Workers)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "experiments", cfg.OutDir)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RW_WIDTH", "25")
	t.Setenv("RW_HEIGHT", "40")
	t.Setenv("RW_SEED", "12345")
	t.Setenv("RW_LOG_LEVEL", "debug")

	cfg := Load()

	require.Equal(t, 25, cfg.Width)
	require.Equal(t, 40, cfg.Height)
	require.Equal(t, uint64(12345), cfg.Seed)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 200, cfg.Steps, "Untouched variables keep their defaults")
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("RW_STEPS", "many")
	t.Setenv("RW_SEED", "-7")

	cfg := Load()

	require.Equal(t, 200, cfg.Steps)
	require.Equal(t, uint64(0), cfg.Seed)
}
