package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to stdout. Production output is JSON, otherwise text.
func New(level int, production bool) *Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(level)}
	if production {
		return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stdout, opts))}
	}
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stdout, opts))}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
