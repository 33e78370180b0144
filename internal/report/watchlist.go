package report

import (
	"io"
	"strings"

	"github.com/kucheran101/ensguard/internal/model"
)

// WatchlistWriter outputs a plain list of variants, one per line, in
// ranked order. The format is intentionally free of any metadata so it
// can be fed directly into external monitoring and alerting tools.
type WatchlistWriter struct {
	baseWriter
}

// NewWatchlistWriter creates a WatchlistWriter that outputs to the given writer.
func NewWatchlistWriter(output io.Writer) *WatchlistWriter {
	return &WatchlistWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one variant per line.
func (w *WatchlistWriter) Write(report *model.RankedReport) (int, error) {
	var sb strings.Builder
	for _, c := range report.Candidates {
		sb.WriteString(c.Variant)
		sb.WriteString("\n")
	}
	return w.output.Write([]byte(sb.String()))
}
