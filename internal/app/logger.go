package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/company-directory/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Every record carries the service name and version.
//
// Format "json" is for production; anything else gives text with source
// locations. Level is debug, info, warn or error (case-insensitive), info otherwise.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !json,
		ReplaceAttr: durationMillis,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", Name),
		slog.String("version", Version),
	)
}

// durationMillis renders duration attributes as fractional milliseconds so
// request and phase timings stay numeric in JSON output.
func durationMillis(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindDuration {
		return a
	}
	return slog.Float64(a.Key+"_ms", float64(a.Value.Duration().Microseconds())/1000)
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
