package defaults

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent    = slog.New(slog.DiscardHandler)
	loggerPtr atomic.Pointer[slog.Logger]
)

func init() {
	loggerPtr.Store(silent)
}

// SetLogger configures the package logger shared by defaults and its
// sub-packages (store, engine). By default nothing is logged.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default. Registries and stores created with an explicit WithLogger option
// keep their own logger.
//
// Log levels used:
//   - [slog.LevelDebug]: populate/clear summaries, resource release
//   - [slog.LevelInfo]: engine start and shutdown
//   - [slog.LevelWarn]: lookup misses and wrong-category lookups
//
// Example:
//
//	defaults.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger. Registries, stores and engines
// without their own logger read it at log time, so SetLogger takes effect on
// objects that already exist.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
