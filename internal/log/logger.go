package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a new slog.Logger with text output.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
//
// Design decision: The default level is Warn, not Info. Reports go to
// stdout and are the product of a run; logs exist for diagnosing problems,
// so quiet-by-default keeps piped output clean.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(verbose)))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON format.
// Useful for structured log aggregation.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, handlerOptions(verbose)))
}

// handlerOptions maps the verbose flag to a slog level.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
