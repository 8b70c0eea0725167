package config

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, Env{LogLevel: "info", LogFormat: "text", Workers: 4}, e)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LEAGUESIM_LOG_LEVEL", "debug")
	t.Setenv("LEAGUESIM_LOG_FORMAT", "json")
	t.Setenv("LEAGUESIM_WORKERS", "0")

	e, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "debug", e.LogLevel)
	assert.Equal(t, "json", e.LogFormat)
	assert.Equal(t, 1, e.Workers)
}

func TestLoadEnvInvalidWorkers(t *testing.T) {
	t.Setenv("LEAGUESIM_WORKERS", "many")

	_, err := LoadEnv()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Env{LogLevel: "warn", LogFormat: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.WithField("team", "A").Warn("shown")

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"team":"A"`)

	_, err = Env{LogLevel: "loud", LogFormat: "text"}.NewLogger(&buf)
	assert.Error(t, err)
	_, err = Env{LogLevel: "info", LogFormat: "xml"}.NewLogger(&buf)
	assert.Error(t, err)
}
