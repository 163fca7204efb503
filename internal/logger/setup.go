/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/josephgoksu/fitcoach/types"
)

// ParseLevel maps a level name to slog.Level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// NewHandler builds a text or JSON handler writing to w.
func NewHandler(w io.Writer, cfg types.LogConfig, verbose bool) slog.Handler {
	level := ParseLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Setup installs the default slog logger.
func Setup(w io.Writer, cfg types.LogConfig, verbose bool) *slog.Logger {
	l := slog.New(NewHandler(w, cfg, verbose))
	slog.SetDefault(l)
	return l
}
