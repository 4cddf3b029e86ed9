package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	l, err := New(Config{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = New(Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNew_FallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "chatty", Encoding: "xml"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}

func TestNew_WritesServiceFieldToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant-api.log")
	l, err := New(Config{Level: "info", OutputPath: path, Service: "restaurant-api"})
	require.NoError(t, err)

	l.Info("Menu replaced", zap.Uint("restaurantID", 7))
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Menu replaced", entry["msg"])
	assert.Equal(t, "restaurant-api", entry["service"])
	assert.Equal(t, float64(7), entry["restaurantID"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_RejectsUnopenableOutput(t *testing.T) {
	_, err := New(Config{OutputPath: filepath.Join(t.TempDir(), "missing", "dir", "app.log")})
	assert.Error(t, err)
}
