package logging

import "github.com/xqrs/tview-reorder/reorder"

// NopLogger discards all log messages.
type NopLogger struct{}

var _ reorder.Logger = NopLogger{}

// NewNop returns a logger that discards everything.
func NewNop() NopLogger {
	return NopLogger{}
}

func (NopLogger) Debug(_ /* msg */ string, _ /* keysAndValues */ ...any) {}
func (NopLogger) Info(_ /* msg */ string, _ /* keysAndValues */ ...any)  {}
func (NopLogger) Warn(_ /* msg */ string, _ /* keysAndValues */ ...any)  {}
func (NopLogger) Error(_ /* msg */ string, _ /* keysAndValues */ ...any) {}
