package fontreport

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a pipeline is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by fontreport and its internal
// packages. By default nothing is logged. Pass nil to restore the silent
// default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-record diagnostics (each font file, each join miss)
//   - [slog.LevelInfo]: pipeline milestones (tables loaded, artifacts written)
//   - [slog.LevelWarn]: recoverable oddities (duplicate font basenames)
//
// Example:
//
//	fontreport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Internal packages call this so a single
// SetLogger call in main configures every pipeline stage.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
