package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog logger so callers can chain the usual
// l.Info().Caller().Msgf(...) style without importing zerolog directly.
type Logger struct {
	zerolog.Logger
}

// NewConsole returns a console logger writing to stdout. When debug is false,
// the level is raised to info.
func NewConsole(debug bool) *Logger {
	return newConsole(debug, os.Stdout)
}

// NewErrorConsole returns a console logger writing to stderr, for fatal
// startup paths where the stdout logger does not exist yet.
func NewErrorConsole(debug bool) *Logger {
	return newConsole(debug, os.Stderr)
}

func newConsole(debug bool, f *os.File) *Logger {
	level := zerolog.InfoLevel

	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: f}

	l := zerolog.New(out).Level(level).With().Timestamp().Logger()

	return &Logger{l}
}
