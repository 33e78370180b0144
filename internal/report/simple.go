package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kucheran101/ensguard/internal/model"
)

// defaultPreviewLimit is the number of candidates shown in the terminal
// report. The full list still lands in file outputs; the console preview
// stays scannable.
const defaultPreviewLimit = 10

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// limit is the maximum number of candidates printed.
	// Zero means print everything.
	limit int

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithLimit sets the maximum number of candidates shown.
// Zero means no limit.
func WithLimit(limit int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.limit = limit
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		limit:      defaultPreviewLimit,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.RankedReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeSummary(&sb, report)
	w.writeCandidates(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.RankedReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         ENSGUARD REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Label:       %s\n", report.Label))
	if report.Normalized != report.Label {
		sb.WriteString(fmt.Sprintf("Normalized:  %s\n", report.Normalized))
	}
	sb.WriteString(fmt.Sprintf("Generated:   %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Candidates:  %d\n", report.TotalCandidates()))
	sb.WriteString("\n")
}

// writeSummary writes the per-class summary section.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.RankedReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CLASS SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, class := range model.Classes() {
		sb.WriteString(fmt.Sprintf("  %-14s %d\n", strings.ToUpper(class.String())+":", report.CountByClass(class)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-14s %.3f\n", "TOP SCORE:", report.TopScore))
	sb.WriteString("\n")
}

// writeCandidates writes the ranked candidate table.
func (w *SimpleWriter) writeCandidates(sb *strings.Builder, report *model.RankedReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("TOP CANDIDATES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if !report.HasCandidates() {
		sb.WriteString("  No candidates above the score threshold\n\n")
		return
	}

	candidates := report.Top(w.limit)
	if w.limit == 0 {
		candidates = report.Candidates
	}

	sb.WriteString(fmt.Sprintf("  %-4s %-24s %-14s %-7s %-5s %s\n",
		"#", "VARIANT", "CLASS", "SCORE", "DIST", "PUNYCODE"))
	for i, c := range candidates {
		sb.WriteString(fmt.Sprintf("  %-4d %-24s %-14s %-7.3f %-5d %s\n",
			i+1, c.Variant, c.Class.String(), c.Score, c.Distance, c.Punycode))
		if w.verbose {
			info := model.GetClassInfo(c.Class)
			sb.WriteString(fmt.Sprintf("       %s\n", info.Description))
		}
	}

	if hidden := report.TotalCandidates() - len(candidates); hidden > 0 {
		sb.WriteString(fmt.Sprintf("\n  ... and %d more (use --json or --csv for the full list)\n", hidden))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by ensguard\n")
	sb.WriteString("https://github.com/kucheran101/ensguard\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
