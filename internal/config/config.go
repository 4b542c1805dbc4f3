package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"scopa-game/internal/shared"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variables read by Load.
const (
	EnvSeed          = "SCOPA_SEED"
	EnvShufflePasses = "SCOPA_SHUFFLE_PASSES"
	EnvSumPolicy     = "SCOPA_SUM_POLICY"
	EnvLogLevel      = "SCOPA_LOG_LEVEL"
)

// Config holds the runtime settings of the scopa binary.
type Config struct {
	Seed          uint64
	ShufflePasses int
	SumPolicy     shared.SumPolicy
	LogLevel      log.Level
}

// Load reads a .env file from the working directory if one exists, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function. Unset variables take their defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Seed:          uint64(time.Now().UnixNano()),
		ShufflePasses: shared.DefaultShufflePasses,
		SumPolicy:     shared.SumPolicyLegacy,
		LogLevel:      log.InfoLevel,
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvShufflePasses); ok && v != "" {
		passes, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvShufflePasses, err)
		}
		if passes < 0 {
			return Config{}, fmt.Errorf("%s: must not be negative, got %d", EnvShufflePasses, passes)
		}
		cfg.ShufflePasses = passes
	}
	if v, ok := lookup(EnvSumPolicy); ok && v != "" {
		policy, err := shared.ParseSumPolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSumPolicy, err)
		}
		cfg.SumPolicy = policy
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
