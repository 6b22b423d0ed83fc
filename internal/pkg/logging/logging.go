// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

const EnvProduction = "production"

// New builds a logger writing text in development and JSON in production.
func New(appEnv, logLevel string, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(logLevel),
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if appEnv == EnvProduction {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler)
}

// Setup installs New(appEnv, logLevel, out) as the default logger.
func Setup(appEnv, logLevel string, out io.Writer) {
	slog.SetDefault(New(appEnv, logLevel, out))
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values mean info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
