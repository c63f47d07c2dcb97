package telemetry

import (
	"log/slog"
	"os"
)

// LogFormat selects the slog handler used by NewLogger.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// NewLogger builds a *slog.Logger writing to stderr in the given
// format. An empty or unrecognized format defaults to JSON.
func NewLogger(format LogFormat) *slog.Logger {
	var handler slog.Handler
	if format == LogFormatText {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	return slog.New(handler)
}
