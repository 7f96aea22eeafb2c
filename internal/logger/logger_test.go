// ABOUTME: Tests for the zap-backed global logger
// ABOUTME: Uses an observer core to capture entries written through the helpers
package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWriteToGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	defer Set(zap.NewNop())

	Debug("debug %d", 1)
	Info("info %s", "two")
	Warn("warn")
	Error("error %v", "four")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "debug 1", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "info two", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "error four", entries[3].Message)
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))
	defer Set(zap.NewNop())

	With("request_id", "abc").Infow("handled", "status", 200)

	entries := logs.FilterField(zap.String("request_id", "abc")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "handled", entries[0].Message)
}

func TestInit(t *testing.T) {
	defer Set(zap.NewNop())

	require.NoError(t, Init(true, false))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(false, true))
	assert.False(t, L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, L().Core().Enabled(zapcore.WarnLevel))
}
