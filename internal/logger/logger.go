// Package logger builds the process-wide zap logger from viper settings.
package logger

import (
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/preflow/internal/logger/config"
)

// New reads LOG_LEVEL, LOG_TIME_FORMAT and LOG_DEVELOPMENT from viper
// (environment variables included), validates them and returns a logger
// writing to stderr.
func New() (*zap.Logger, error) {
	viper.AutomaticEnv()
	viper.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.SetDefault("LOG_DEVELOPMENT", false)

	cfg := config.Configuration{
		Level:       viper.GetInt("LOG_LEVEL"),
		TimeFormat:  viper.GetString("LOG_TIME_FORMAT"),
		Development: viper.GetBool("LOG_DEVELOPMENT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return Build(cfg)
}

// Build constructs a logger from an already validated configuration.
func Build(cfg config.Configuration) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
