// Package logger builds the slog logger used across stepviz and defines
// the shared attribute keys.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/stepviz/config"
)

// New builds a logger writing to w according to cfg.
func New(cfg config.Logging, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, cfg.Level)
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidLogFormat, cfg.Format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops everything. Library components use
// it until a caller supplies a real one.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDiscard returns l, or a discard logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}

	return Discard()
}
