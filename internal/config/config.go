// Package config reads process configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	envLogLevel = "LEASEDESK_LOG_LEVEL"
	envSeedDemo = "LEASEDESK_SEED_DEMO"
)

// Config holds the few knobs the console app exposes.
type Config struct {
	LogLevel string
	SeedDemo bool
}

// Load reads configuration from environment variables, applying
// defaults for anything unset. Call godotenv.Load first if a .env
// file should contribute.
func Load() Config {
	cfg := Config{LogLevel: "info"}

	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envSeedDemo); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Warnf("Ignoring invalid %s value %q", envSeedDemo, v)
		} else {
			cfg.SeedDemo = seed
		}
	}
	return cfg
}

// LogrusLevel parses the configured level, falling back to Info on
// unknown names.
func (c Config) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", c.LogLevel)
		return logrus.InfoLevel
	}
	return level
}
