package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// ParseLevel converts a string log level to slog.Level. Unknown values map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a colored console logger writing to w
func New(w io.Writer, level string, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: "15:04:05",
		NoColor:    !color,
	}))
}

// Setup installs the console logger as the slog default.
func Setup(w io.Writer, level string, color bool) *slog.Logger {
	logger := New(w, level, color)
	slog.SetDefault(logger)
	return logger
}
