package maskedit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all log records.
// Enabled reports false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while editors in other goroutines log.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for maskedit.
// By default, maskedit produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by maskedit:
//   - [slog.LevelDebug]: rejected operations (undo at the oldest snapshot,
//     suppressed lasso clicks, redo with nothing pending)
//   - [slog.LevelInfo]: base image loads and exports
//
// Example:
//
//	maskedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by maskedit.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
