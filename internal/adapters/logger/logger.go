// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/unibuild/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	output   io.Writer
	jsonMode bool
}

// New creates a Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

var _ ports.Logger = (*Logger)(nil)

// SetOutput redirects the logger, keeping the current format. nil means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with mu held for writing.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
