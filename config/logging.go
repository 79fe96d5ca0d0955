package config

import (
	"github.com/rs/zerolog"
	"io"
	"time"
)

// NewLogger builds the logger described by cfg, writing to w.
func NewLogger(cfg LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
