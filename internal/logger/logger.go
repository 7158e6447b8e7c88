// Package logger provides structured logging configuration and initialization.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
)

// System provides access to the configured logger instance.
type System interface {
	Logger() *slog.Logger
	Component(name string) *slog.Logger
}

type logger struct {
	logger *slog.Logger
}

// New creates a logger system with the specified configuration.
// Output goes to stdout when w is nil.
func New(cfg *config.LoggingConfig, w io.Writer) System {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level.ToSlogLevel(),
	}

	var handler slog.Handler
	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &logger{
		logger: slog.New(handler),
	}
}

// Logger returns the configured slog.Logger instance.
func (l *logger) Logger() *slog.Logger {
	return l.logger
}

// Component returns a child logger tagged with the subsystem name.
func (l *logger) Component(name string) *slog.Logger {
	return l.logger.With("component", name)
}
