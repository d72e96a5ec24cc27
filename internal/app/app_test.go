package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"timemcp/internal/infra/config"
)

func TestApplyLogging(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	a := New(zap.NewNop(), level, false)

	a.applyLogging(config.Config{Logging: config.LoggingConfig{Level: "debug"}})
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	// Invalid levels leave the current level in place.
	a.applyLogging(config.Config{Logging: config.LoggingConfig{Level: "shouting"}})
	assert.Equal(t, zapcore.DebugLevel, level.Level())
}

func TestApplyLogging_PinnedFlagWins(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	a := New(zap.NewNop(), level, true)

	a.applyLogging(config.Config{Logging: config.LoggingConfig{Level: "debug"}})
	assert.Equal(t, zapcore.WarnLevel, level.Level())
}

func TestValidateConfig(t *testing.T) {
	a := New(zap.NewNop(), zap.NewAtomicLevelAt(zapcore.InfoLevel), false)

	require.NoError(t, a.ValidateConfig(""))
	require.Error(t, a.ValidateConfig(filepath.Join(t.TempDir(), "absent.yaml")))
}
