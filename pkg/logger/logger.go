// Package logger builds the shared slog logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format of emitted records.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a slog.Logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if strings.ToLower(format) == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Default is the stderr text logger used when no configuration is loaded.
func Default() *slog.Logger {
	return New(os.Stderr, "info", FormatText)
}
