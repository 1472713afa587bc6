package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, parseLogLevel(input), input)
	}
}

func TestLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("info", "", false)
	require.NoError(t, err)
	logger.AddOutput(NewConsoleOutput(&buf, FormatText))

	logger.Debug("hidden")
	logger.Info("visible", Field{Key: "c", Value: "x"}, Field{Key: "b", Value: 2}, Field{Key: "a", Value: 1})
	logger.Warnf("warned %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] visible a=1 b=2 c=x")
	assert.Contains(t, out, "[WARN] warned 3")

	logger.SetLevel(LevelDebug)
	logger.Debug("now shown")
	assert.Contains(t, buf.String(), "[DEBUG] now shown")
}

func TestLoggerWithoutOutputsDiscards(t *testing.T) {
	logger, err := NewLogger("debug", "", false)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		logger.Error("nowhere")
	})
	assert.NoError(t, logger.Close())
}

func TestLoggerFileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger("debug", path, false)
	require.NoError(t, err)
	logger.Info("fetched", Field{Key: "status", Value: 200})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "fetched", entry.Message)
	assert.EqualValues(t, 200, entry.Fields["status"])
}

func TestNewLoggerBadFile(t *testing.T) {
	_, err := NewLogger("info", filepath.Join(t.TempDir(), "missing", "app.log"), false)
	assert.Error(t, err)
}

func TestGlobalLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global.log")
	require.NoError(t, InitLogger("debug", path, false))

	LogDebugf("debug %s", "line")
	LogInfo("info line", Field{Key: "k", Value: "v"})
	require.NoError(t, CloseLogger())

	// No-ops once closed
	LogWarnf("dropped %d", 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "info line")
	assert.NotContains(t, out, "dropped")
}
