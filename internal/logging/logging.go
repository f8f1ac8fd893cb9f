// Package logging builds the structured logger shared by the CLI commands.
package logging

import (
	"io"
	"log/slog"

	"github.com/abhisek/placement/internal/config"
)

// New returns a logger writing to w with the level and format from cfg.
// Unknown values fall back to info level and text output.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
