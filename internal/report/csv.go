package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kucheran101/ensguard/internal/model"
)

// csvHeader is the fixed column order of CSV output. Scripts depend on
// this order staying stable across releases.
var csvHeader = []string{"variant", "class", "position", "score", "distance", "punycode"}

// CSVWriter outputs reports in CSV format, one candidate per row.
// This format is designed for spreadsheet analysis and ingestion by
// monitoring pipelines.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in CSV format.
// The candidate order matches the ranked order of the report.
func (w *CSVWriter) Write(report *model.RankedReport) (int, error) {
	// Buffer the full document so the byte count we return reflects
	// what actually reached the destination.
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}

	for _, c := range report.Candidates {
		row := []string{
			c.Variant,
			c.Class.String(),
			strconv.Itoa(c.Position),
			strconv.FormatFloat(c.Score, 'f', 3, 64),
			strconv.Itoa(c.Distance),
			c.Punycode,
		}
		if err := cw.Write(row); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
