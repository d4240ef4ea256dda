package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wally-yu/binance-dex/config"
)

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bnbdex.log")
	log, closer, err := New(config.LogConfig{Level: "warn", FileName: path, MaxSize: 1}, false)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.String("key", "value"))
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "WARN")
	require.Contains(t, string(data), "shown")
	require.Contains(t, string(data), `"key": "value"`)
}

func TestNewLevels(t *testing.T) {
	log, _, err := New(config.LogConfig{Level: "error"}, true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, _, err = New(config.LogConfig{}, false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))

	_, _, err = New(config.LogConfig{Level: "loud"}, false)
	require.Error(t, err)
}
