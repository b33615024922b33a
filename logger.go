package paintly

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine,
// including media decode goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for paintly and all its sub-packages.
// By default, paintly produces no log output.
//
// The logger is also installed as the gg logger, so the surface, stroke,
// hover and media packages, which log through gg.Logger, share it along
// with the raster backend.
//
// Pass nil to disable logging.
//
// Log levels used by paintly:
//   - [slog.LevelDebug]: snapshots, placement math, scratch allocation
//   - [slog.LevelInfo]: lifecycle (initialize, teardown, rescale)
//   - [slog.LevelWarn]: abandoned frames and rejected operations
//   - [slog.LevelError]: drawing surface unavailable
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
