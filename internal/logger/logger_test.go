package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type staticLoggingConfig struct {
	defaultLevel string
	components   map[string]string
}

func (c *staticLoggingConfig) GetComponentLevel(component string) string {
	if level, ok := c.components[component]; ok {
		return level
	}
	return c.defaultLevel
}

func (c *staticLoggingConfig) GetDefaultLevel() string { return c.defaultLevel }

func (c *staticLoggingConfig) IsDevelopment() bool { return false }

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for level := range ValidLogLevels {
		l, err := NewLogger(level, false)
		require.NoError(t, err, level)
		require.Equal(t, level, l.GetLevel())
	}

	l, err := NewLogger("debug", true)
	require.NoError(t, err)
	require.Equal(t, "debug", l.GetLevel())

	_, err = NewLogger("verbose", false)
	require.Error(t, err)
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	parent, err := NewLogger("info", false)
	require.NoError(t, err)
	child := parent.WithComponent("log-query")

	require.NoError(t, parent.SetLevel("error"))
	require.Equal(t, "error", child.GetLevel())

	require.Error(t, parent.SetLevel("loud"))
	require.Equal(t, "error", parent.GetLevel())
}

func TestNewComponentLoggerFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &staticLoggingConfig{
		defaultLevel: "warn",
		components:   map[string]string{"block-resolver": "debug"},
	}

	resolverLog := NewComponentLoggerFromConfig("block-resolver", cfg)
	require.Equal(t, "block-resolver", resolverLog.GetComponent())
	require.Equal(t, "debug", resolverLog.GetLevel())

	storeLog := NewComponentLoggerFromConfig("log-store", cfg)
	require.Equal(t, "warn", storeLog.GetLevel())

	defaultLog := NewComponentLoggerFromConfig("rpc-server", nil)
	require.Equal(t, "info", defaultLog.GetLevel())
	require.Equal(t, "rpc-server", defaultLog.GetComponent())
}

func TestNewComponentLogger_InvalidLevelPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewComponentLogger("metrics", "chatty", false)
	})
}

func TestLogger_ComponentField(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	l := (&Logger{
		SugaredLogger: zap.New(core).Sugar(),
		atomicLevel:   zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}).WithComponent("chain-client")

	l.Debugf("hidden %d", 1)
	l.Infof("resolved block %d", 10)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "resolved block 10", entries[0].Message)
	require.Equal(t, "chain-client", entries[0].ContextMap()["component"])
}

func TestNewNopLogger(t *testing.T) {
	t.Parallel()

	l := NewNopLogger()
	require.NotPanics(t, func() {
		l.Infof("discarded %s", "message")
		l.WithComponent("x").Errorf("discarded")
	})
	require.Equal(t, "info", l.GetLevel())
}

func TestGetDefaultLogger(t *testing.T) {
	t.Parallel()

	require.Same(t, GetDefaultLogger(), GetDefaultLogger())
}
