package storage

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"
)

// badgerLogger routes badger's internal messages through zerolog.
type badgerLogger struct {
	log zerolog.Logger
}

func NewBadgerLogger(log zerolog.Logger) badger.Logger {
	return &badgerLogger{log: log.With().Str("component", "badger").Logger()}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}
