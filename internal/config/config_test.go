package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("ANALYTICS_TIMEZONE", "")

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "threadpulse.log", cfg.LogFile)
	assert.Empty(t, cfg.Timezone)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ANALYTICS_TIMEZONE", "UTC")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.NotNil(t, loc)
}

func TestLocationInvalid(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	_, err := cfg.Location()
	assert.Error(t, err)
}
