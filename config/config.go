package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"randomwalk/experiments"
	"randomwalk/walker"
)

// Config holds simulation defaults loaded from the environment. Command-line
// flags override all of these.
type Config struct {
	Width       int    // RW_WIDTH: region width in cells
	Height      int    // RW_HEIGHT: region height in cells
	Steps       int    // RW_STEPS: steps per walk
	MaxAttempts int    // RW_MAX_ATTEMPTS: per-step sampling budget
	Seed        uint64 // RW_SEED: base seed, 0 means wall clock
	Walks       int    // RW_WALKS: walks per batch
	Workers     int    // RW_WORKERS: batch pool size, 0 means auto
	LogLevel    string // RW_LOG_LEVEL: zerolog level name
	OutDir      string // RW_OUT_DIR: root directory for batch CSV output
}

// Load reads optional overrides from a .env file and the environment. Every
// value has a default; nothing is required.
func Load() Config {
	// A missing .env file is the normal case for a CLI run
	_ = godotenv.Load()

	return Config{
		Width:       getEnvAsInt("RW_WIDTH", 100),
		Height:      getEnvAsInt("RW_HEIGHT", 100),
		Steps:       getEnvAsInt("RW_STEPS", 200),
		MaxAttempts: getEnvAsInt("RW_MAX_ATTEMPTS", walker.DefaultMaxAttempts),
		Seed:        getEnvAsUint64("RW_SEED", 0),
		Walks:       getEnvAsInt("RW_WALKS", experiments.DefaultWalks),
		Workers:     getEnvAsInt("RW_WORKERS", 0),
		LogLevel:    getEnvWithDefault("RW_LOG_LEVEL", "info"),
		OutDir:      getEnvWithDefault("RW_OUT_DIR", "experiments"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// the default if it is not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an environment variable as an integer, falling back to
// the default when unset or unparseable.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Msgf("environment variable %s must be an integer, using default %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return parsed
}

// getEnvAsUint64 parses an environment variable as an unsigned integer,
// falling back to the default when unset or unparseable.
func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Warn().Msgf("environment variable %s must be an unsigned integer, using default %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return parsed
}
