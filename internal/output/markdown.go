package output

import (
	"fmt"
	"io"
	"strings"

	"repohealth/internal/checks"
	"repohealth/internal/engine"
)

// MarkdownRenderer writes the report as a markdown document, suitable
// for pasting into PR comments or committing as a scan artifact.
type MarkdownRenderer struct{}

func (m *MarkdownRenderer) Render(w io.Writer, rep *engine.Report) error {
	var b strings.Builder

	b.WriteString("# Repository Health Report\n\n")
	fmt.Fprintf(&b, "- **Path:** `%s`\n", rep.Repo.Path)
	if rep.Repo.IsRepo && rep.Repo.Branch != "" {
		fmt.Fprintf(&b, "- **Branch:** `%s` @ `%s`\n", rep.Repo.Branch, rep.Repo.HeadSHA)
	}
	fmt.Fprintf(&b, "- **Score:** %d/100 (grade %s)\n", rep.Score, rep.Grade)
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", rep.Meta.Timestamp)

	b.WriteString("## Deductions by category\n\n")
	b.WriteString("| Category | Deduction |\n")
	b.WriteString("|----------|-----------|\n")
	for _, cat := range checks.Categories() {
		fmt.Fprintf(&b, "| %s | %d |\n", cat, rep.Categories[cat])
	}
	b.WriteString("\n")

	b.WriteString("## Findings\n\n")
	if len(rep.Findings) == 0 {
		b.WriteString("No findings.\n\n")
	} else {
		b.WriteString("| Severity | Check | Finding | Recommendation |\n")
		b.WriteString("|----------|-------|---------|----------------|\n")
		for _, f := range sortedBySeverity(rep.Findings) {
			fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n",
				f.Severity, f.CheckID, mdEscape(f.Title), mdEscape(f.Recommendation))
		}
		b.WriteString("\n")
	}

	ran, skipped, failed := countExecutions(rep.Checks)
	b.WriteString("## Check execution\n\n")
	fmt.Fprintf(&b, "%d ran, %d skipped, %d failed.\n", ran, skipped, failed)
	if failed > 0 {
		b.WriteString("\n")
		for _, ex := range rep.Checks {
			if ex.Status == engine.CheckStatusFailed {
				fmt.Fprintf(&b, "- `%s` failed: %s\n", ex.CheckID, mdEscape(ex.Error))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
