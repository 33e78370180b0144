package report

import (
	"fmt"
	"io"
	"strings"
)

// badgeTemplate is the SVG document emitted for a label. The dot on the
// right signals active monitoring; the dark palette matches GitHub's
// default dark theme so the badge blends into README files.
const badgeTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="420" height="48" role="img" aria-label="Look-alike protection">
  <rect width="420" height="48" fill="#0d1117" rx="8"/>
  <text x="16" y="30" font-family="Segoe UI, Inter, Arial" font-size="16" fill="#e6edf3">
    %s.eth look-alike protection by ensguard
  </text>
  <circle cx="395" cy="24" r="6" fill="#3fb950"/>
</svg>`

// svgEscaper escapes the characters that would break out of SVG text
// content. Labels are normalized before rendering, but normalization does
// not forbid markup characters.
var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Badge renders the SVG badge for a normalized label.
func Badge(label string) string {
	return fmt.Sprintf(badgeTemplate, svgEscaper.Replace(label))
}

// WriteBadge writes the SVG badge for a normalized label to the given writer.
// Returns the number of bytes written and any error encountered.
func WriteBadge(output io.Writer, label string) (int, error) {
	return io.WriteString(output, Badge(label))
}
