// Package report provides output formatting for ranked look-alike reports.
// It supports human-readable text, JSON, CSV, Markdown, plain watchlists,
// and SVG badges, all behind a common Writer interface so callers can
// compose destinations freely.
package report
