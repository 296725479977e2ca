package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomsarry/content_backend/logger"
)

func TestSetupLogsConfigurationSources(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9001")
	t.Cleanup(func() { logger.Configure(logger.Config{Level: "disabled"}) })

	var buf bytes.Buffer
	cfg := setup(&buf)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)

	out := buf.String()
	assert.Contains(t, out, `"component":"config"`)
	assert.Contains(t, out, `"key":"PORT","value":9001,"source":"environment"`)
	assert.Contains(t, out, "using environment variable")
}

func TestSetupQuietAtInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Cleanup(func() { logger.Configure(logger.Config{Level: "disabled"}) })

	var buf bytes.Buffer
	cfg := setup(&buf)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotContains(t, buf.String(), "using environment variable")
}
