package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/timetrack-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it as
// the slog default. "json" is the production format; "text" adds source
// locations for development. Output always goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	textFormat := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: textFormat,
	}

	var handler slog.Handler
	if textFormat {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a config string to a slog level, defaulting unknown
// values to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
