// Package logging builds the application's zerolog logger from config.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-container/framework/config"
)

// New initializes a logger from Config.Log. Unknown level strings fall back
// to debug rather than failing bootstrap.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if cfg.Log.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	logger = logger.With().Timestamp().Str("app", cfg.App.Name).Logger().Level(level)
	return &logger
}
