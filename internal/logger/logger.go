// Package logger wraps zerolog behind the small logging surface the rest of
// the application uses.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

// InitLogging reconfigures the global logger. When filePath is non-empty,
// log lines are duplicated to that file in JSON form.
func InitLogging(filePath string) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout}}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			writers = append(writers, f)
		} else {
			log.Warn().Err(err).Str("path", filePath).Msg("could not open log file, logging to console only")
		}
	}
	log = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

func WarnLog(ctx context.Context, format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}
