package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envSeedDemo, "")

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, logrus.InfoLevel, cfg.LogrusLevel())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envSeedDemo, "true")

	cfg := Load()
	assert.Equal(t, logrus.DebugLevel, cfg.LogrusLevel())
	assert.True(t, cfg.SeedDemo)
}

func TestLoadIgnoresBadSeedValue(t *testing.T) {
	t.Setenv(envSeedDemo, "maybe")

	cfg := Load()
	assert.False(t, cfg.SeedDemo)
}

func TestUnknownLogLevelFallsBack(t *testing.T) {
	cfg := Config{LogLevel: "chatty"}
	assert.Equal(t, logrus.InfoLevel, cfg.LogrusLevel())
}
