// Package logging configures the process-wide slog logger.
//
// Logs are structured JSON written to stderr, so they never mix with the
// banner on stdout. Every record carries the module name and version.
// The level defaults to WARN for an interactive fetch tool; set LOG_LEVEL
// (or --log-level) to debug to see per-collector timings:
//
//	LOG_LEVEL=debug microfetch
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvLogLevel is the environment variable consulted for the log level.
	EnvLogLevel = "LOG_LEVEL"

	// DefaultLevel is used when no level is configured.
	DefaultLevel = "warn"
)

// ParseLogLevel converts a level name into a slog.Level. Matching is
// case-insensitive; unknown values fall back to WARN.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewStructuredLogger returns a JSON logger writing to stderr.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newLogger(os.Stderr, module, version, level)
}

func newLogger(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLogLevel(level)
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
		// source location only pays off when debugging
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(h).With("module", module, "version", version)
}

// SetDefaultStructuredLogger installs a default logger whose level comes
// from LOG_LEVEL, or DefaultLevel when unset.
func SetDefaultStructuredLogger(module, version string) {
	level, ok := os.LookupEnv(EnvLogLevel)
	if !ok {
		level = DefaultLevel
	}
	SetDefaultStructuredLoggerWithLevel(module, version, level)
}

// SetDefaultStructuredLoggerWithLevel installs a default logger with an
// explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}
