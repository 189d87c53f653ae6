// Package logging builds the process-wide slog.Logger.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a slog.Logger writing to w. format selects the handler:
// "text" produces tint's colored, human-readable output for local
// development; anything else produces JSON lines for log aggregators.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == "text" {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
