// Package logging provides structured logging for perftgen using zerolog.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger *zerolog.Logger

type loggerKey struct{}

func init() {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	logger = &l
}

// Init configures the global logger to write to w.
// If debug is true, sets log level to Debug.
// If human is true, uses a human-friendly console writer.
func Init(w io.Writer, debug bool, human bool) {
	SetLogger(New(w, debug, human))
}

// New builds a logger writing to w.
func New(w io.Writer, debug bool, human bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if human {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}

// SetLogger overrides the global logger (useful for testing).
func SetLogger(l zerolog.Logger) {
	logger = &l
}

// WithStage returns a logger with the pipeline stage field set.
func WithStage(ctx context.Context, stage string) zerolog.Logger {
	return FromContext(ctx).With().Str("stage", stage).Logger()
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger carried by ctx, or the global logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
			return l
		}
	}

	return *logger
}
