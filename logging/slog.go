// Package logging provides reorder.Logger implementations.
package logging

import (
	"log/slog"

	"github.com/xqrs/tview-reorder/reorder"
)

// SlogLogger implements reorder.Logger on top of log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

var _ reorder.Logger = (*SlogLogger)(nil)

// NewSlog wraps an existing slog.Logger. A nil logger uses slog.Default().
//
// Example:
//
//	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
//	ctrl, err := tview.AttachReordering(app, list, listener,
//		reorder.WithLogger(logging.NewSlog(slog.New(handler))))
func NewSlog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// With returns a logger that adds the given key/value pairs to every record.
func (l *SlogLogger) With(keysAndValues ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(keysAndValues...)}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}
