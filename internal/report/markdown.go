package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/kucheran101/ensguard/internal/model"
)

// markdownTableLimit caps the candidate table in Markdown output.
// Longer lists belong in CSV or JSON; a thousand-row table makes the
// document useless for its audience.
const markdownTableLimit = 50

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RankedReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeCandidates(md, report)
	w.writeAdvice(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RankedReport) {
	md.H1("ensguard Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Label", "`" + report.Label + "`"},
			{"Normalized", "`" + report.Normalized + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Candidates", strconv.Itoa(report.TotalCandidates())},
			{"Top Score", strconv.FormatFloat(report.TopScore, 'f', 3, 64)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the class summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RankedReport) {
	md.H2("Class Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.Classes()))
	for _, class := range model.Classes() {
		rows = append(rows, []string{class.String(), strconv.Itoa(report.CountByClass(class))})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Class", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.HasCandidates() {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart for the class distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.RankedReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Variant Class Distribution"),
		piechart.WithShowData(true),
	)

	for _, class := range model.Classes() {
		count := report.CountByClass(class)
		if count > 0 {
			chart.LabelAndIntValue(class.String(), uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the top score.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.RankedReport) {
	switch {
	case report.TopScore >= 0.9:
		md.Cautionf(
			"Highly confusable variants exist. The top candidate scores %.3f and is nearly indistinguishable from the label.",
			report.TopScore,
		)
	case report.TopScore >= 0.7:
		md.Warningf(
			"Confusable variants detected with a top score of %.3f. Consider registering the highest-ranked candidates.",
			report.TopScore,
		)
	case report.HasCandidates():
		md.Note("Only moderately confusable variants were found.")
	default:
		md.Tip("No candidates above the score threshold.")
	}
	md.PlainText("")
}

// writeCandidates writes the ranked candidate table.
func (w *MarkdownWriter) writeCandidates(md *markdown.Markdown, report *model.RankedReport) {
	md.H2("Top Candidates")
	md.PlainText("")

	if !report.HasCandidates() {
		md.PlainText("No candidates above the score threshold.")
		md.PlainText("")
		return
	}

	candidates := report.Top(markdownTableLimit)
	rows := make([][]string, len(candidates))
	for i, c := range candidates {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			"`" + c.Variant + "`",
			c.Class.String(),
			strconv.FormatFloat(c.Score, 'f', 3, 64),
			strconv.Itoa(c.Distance),
			"`" + c.Punycode + "`",
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Variant", "Class", "Score", "Distance", "Punycode"},
		Rows:   rows,
	})
	md.PlainText("")

	if hidden := report.TotalCandidates() - len(candidates); hidden > 0 {
		md.PlainTextf("*%d more candidates omitted; export CSV or JSON for the full list.*", hidden)
		md.PlainText("")
	}
}

// writeAdvice writes per-class remediation advice for the classes that
// actually produced candidates.
func (w *MarkdownWriter) writeAdvice(md *markdown.Markdown, report *model.RankedReport) {
	if !report.HasCandidates() {
		return
	}

	md.H2("Advice")
	md.PlainText("")

	for _, class := range model.Classes() {
		if report.CountByClass(class) == 0 {
			continue
		}
		info := model.GetClassInfo(class)
		md.Details(class.String(), info.Description+" "+info.Advice)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [ensguard](https://github.com/kucheran101/ensguard)*")
}
