package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_FormatsMessages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.LogInfo("Application is running on %v:%v...", "localhost", "8092")
	l.LogErrorf("Failed to render: %v", "boom")
	l.LogWarnf("amount %q is not a number", "abc")
	l.LogDebugf("style %s", "classic")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Application is running on localhost:8092...", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "Failed to render: boom", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
}

func TestLogger_WithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core)).With(zap.String("requestID", "abc"))

	l.LogInfo("done")

	entries := logs.FilterField(zap.String("requestID", "abc")).AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "done", entries[0].Message)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Conf{Env: "development", Level: "loud"})
	require.Error(t, err)
}

func TestLogger_SetLevel(t *testing.T) {
	l, err := New(Conf{Env: "production", Level: "info"})
	require.NoError(t, err)

	require.NoError(t, l.SetLevel("error"))
	assert.Equal(t, zapcore.ErrorLevel, l.level.Level())

	require.Error(t, l.SetLevel("verbose"))
	assert.NotNil(t, l.Std())
}
