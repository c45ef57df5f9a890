package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stepboard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetWithoutDebugModeIsNop(t *testing.T) {
	require.NoError(t, Initialize(config.LoggingConfig{Level: "info"}, false))
	t.Cleanup(func() { _ = Close() })

	l := Get(CategoryDirectory)
	assert.False(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestCategoriesAreNamedAndFiltered(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Use(zap.New(core), config.LoggingConfig{
		DebugMode:  true,
		Categories: map[string]bool{"ui": false},
	})
	t.Cleanup(func() { _ = Close() })

	Get(CategoryDirectory).Info("fetched", zap.Int("count", 3))
	Get(CategoryUI).Info("should be dropped")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "directory", entries[0].LoggerName)
	assert.Equal(t, "fetched", entries[0].Message)
	assert.EqualValues(t, 3, entries[0].ContextMap()["count"])
}

func TestGetCachesLoggers(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	Use(zap.New(core), config.LoggingConfig{DebugMode: true})
	t.Cleanup(func() { _ = Close() })

	assert.Same(t, Get(CategorySession), Get(CategorySession))
}

func TestInitializeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stepboard.log")
	require.NoError(t, Initialize(config.LoggingConfig{File: path, Level: "warn"}, true))

	Get(CategoryLeaderboard).Debug("ranked", zap.Int("users", 100))
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `"logger":"boot"`), out)
	assert.True(t, strings.Contains(out, `"msg":"ranked"`), out)
}

func TestInitializeRequiresFile(t *testing.T) {
	err := Initialize(config.LoggingConfig{DebugMode: true}, false)
	assert.Error(t, err)
}
