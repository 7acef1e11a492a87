package app

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger creates a configured slog.Logger. It does not touch the
// global default, so library users and tests get isolated instances.
// Logs go to errW; stdout stays reserved for the output-path line.
func newLogger(levelStr, formatStr string, errW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(formatStr) == "json" {
		return slog.New(slog.NewJSONHandler(errW, opts))
	}
	return slog.New(slog.NewTextHandler(errW, opts))
}
