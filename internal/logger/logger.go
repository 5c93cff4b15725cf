// Package logger wraps zerolog behind package-level helpers so callers never
// carry a logger value around.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	Init(os.Stderr)
}

// Init points the logger at w with a console writer. Called again by tests to
// capture output.
func Init(w io.Writer) {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	log = zerolog.New(console).With().Timestamp().Logger()
}

// SetLevel sets the global log level from its string form. Unknown values
// fall back to info.
func SetLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Debugf logs a formatted debug message.
func Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

// Infof logs a formatted info message.
func Infof(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

// Error logs a message with the error object attached.
func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
