// Package console is the runtime's diagnostic sink. Messages are forwarded to
// a structured logger so they land next to the host's own log records.
package console

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.Default())
}

// SetLogger replaces the logger that console messages are written to.
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger.Store(l)
}

// Log writes an informational message.
func Log(args ...any) {
	logger.Load().Info(join(args))
}

// Warn writes a warning.
func Warn(args ...any) {
	logger.Load().Warn(join(args))
}

// Error writes an error message.
func Error(args ...any) {
	logger.Load().Error(join(args))
}

func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
