package logger_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/preflow/internal/logger"
	"github.com/katalvlaran/preflow/internal/logger/config"
)

func TestValidate(t *testing.T) {
	require.NoError(t, config.Configuration{Level: config.DEBUG_LEVEL, TimeFormat: "2006-01-02"}.Validate())
	require.ErrorIs(t, config.Configuration{Level: 9, TimeFormat: "2006"}.Validate(), config.ErrInvalidConfig)
	require.ErrorIs(t, config.Configuration{Level: 0}.Validate(), config.ErrInvalidConfig)
	require.ErrorIs(t, config.Configuration{Level: 0, TimeFormat: "plain"}.Validate(), config.ErrInvalidConfig)
}

func TestNewFromViper(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("LOG_LEVEL", config.WARN_LEVEL)

	log, err := logger.New()
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.WarnLevel))

	viper.Set("LOG_LEVEL", 7)
	_, err = logger.New()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("LOG_LEVEL", "2")

	log, err := logger.New()
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.ErrorLevel))

	t.Setenv("LOG_TIME_FORMAT", "plain")
	_, err = logger.New()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
