package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("chatty"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestLogger_WritesKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Info("statement produced", "customer", "BigCo", "items", 3)
	l.Debug("persisted", "path", "Extratos/x.xml")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "statement produced", entry.Message)
	assert.Equal(t, "BigCo", entry.ContextMap()["customer"])
	assert.EqualValues(t, 3, entry.ContextMap()["items"])
}

func TestNewLogger_BuildsAtLevel(t *testing.T) {
	l, err := NewLogger("error")
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info("dropped") })
}
