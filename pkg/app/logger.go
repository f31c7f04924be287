package app

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Only warnings and errors are shown
// unless verbose is set.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
