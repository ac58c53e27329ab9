// Package config holds the validated settings for the process logger.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Log levels, numerically equal to zapcore levels.
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

// ErrInvalidConfig marks an unusable logger configuration.
var ErrInvalidConfig = errors.New("logger: invalid configuration")

// Configuration is read from viper keys LOG_LEVEL, LOG_TIME_FORMAT and
// LOG_DEVELOPMENT.
type Configuration struct {
	Level      int
	TimeFormat string
	// Development switches to the human-readable console encoder.
	Development bool
}

// Validate checks the level range and that TimeFormat renders a timestamp.
func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("%w: level %d not in [%d,%d]", ErrInvalidConfig, c.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("%w: empty time format", ErrInvalidConfig)
	}
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == c.TimeFormat {
		return fmt.Errorf("%w: time format %q has no layout elements", ErrInvalidConfig, c.TimeFormat)
	}
	return nil
}
