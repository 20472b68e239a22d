package paintercore

import (
	"log/slog"

	"github.com/sveg/paintercore/internal/logging"
)

// SetLogger configures the logger every paintercore package logs
// through (editcontext and brushtool's soft-warning sites included,
// not just the root-level host bindings). By default, paintercore
// produces no log output. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore the default silent
// behavior).
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger currently configured via SetLogger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
