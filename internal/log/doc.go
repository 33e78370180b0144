// Package log provides logging construction helpers built on top of the
// standard slog package.
//
// This package centralizes:
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//   - Text and JSON output variants for interactive and scripted use
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("generation complete",
//	    "label", "vitalik",
//	    "candidates", 200,
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
