package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/text-adventure/internal/config"
)

func TestSetup_TextToWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "development", LogLevel: slog.LevelInfo}

	log, closeFn, err := Setup(cfg, &buf)
	require.NoError(t, err)
	defer closeFn()

	log.Debug("hidden")
	log.Info("world loaded", "rooms", 4)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=\"world loaded\" rooms=4")
}

func TestSetup_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "production", LogLevel: slog.LevelDebug}

	log, closeFn, err := Setup(cfg, &buf)
	require.NoError(t, err)
	defer closeFn()

	WithError(log, assert.AnError).Debug("save failed")
	assert.Contains(t, buf.String(), `"msg":"save failed"`)
	assert.Contains(t, buf.String(), `"error":"`+assert.AnError.Error()+`"`)
}

func TestSetup_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adventure.log")
	cfg := &config.Config{LogFile: path, LogLevel: slog.LevelInfo}

	var buf bytes.Buffer
	log, closeFn, err := Setup(cfg, &buf)
	require.NoError(t, err)

	log.Info("game saved")
	require.NoError(t, closeFn())

	assert.Empty(t, buf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game saved")
}

func TestSetup_BadLogFile(t *testing.T) {
	cfg := &config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "x.log")}
	_, _, err := Setup(cfg, nil)
	assert.Error(t, err)
}
