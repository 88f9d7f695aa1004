// Package logging configures the process-wide structured logger. All
// diagnostics go to stderr so stdout stays clean when it carries the
// catalog artifact itself.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default slog logger. Debug forces the debug level;
// otherwise the LOG_LEVEL environment variable is consulted (debug, info,
// warn, error), defaulting to info. When jsonOutput is set, log lines are
// emitted as JSON.
func Setup(debug, jsonOutput bool) {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = parseLevel(v)
	}
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
