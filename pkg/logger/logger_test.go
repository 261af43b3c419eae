package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in), "level %q", in)
	}
}

func TestAppLogger_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewLoggerWithCore(core)

	log.Debug("hidden")
	log.Info("submitted", "filename", "valid.pdf", "size", 42)
	log.Error("export failed", errors.New("boom"), "status", 500)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "submitted", entries[0].Message)
	assert.Equal(t, "valid.pdf", entries[0].ContextMap()["filename"])
	assert.EqualValues(t, 42, entries[0].ContextMap()["size"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.EqualValues(t, 500, entries[1].ContextMap()["status"])
}

func TestAppLogger_Sync(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	log := NewLoggerWithCore(core)

	syncer, ok := log.(interface{ Sync() error })
	require.True(t, ok, "logger should expose Sync for flushing on exit")
	assert.NoError(t, syncer.Sync())
}
