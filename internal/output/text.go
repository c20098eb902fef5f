package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"repohealth/internal/checks"
	"repohealth/internal/engine"
)

// TextRenderer writes a human-readable report. Plain disables color,
// for terminals and pipes that can't take ANSI escapes.
type TextRenderer struct {
	Plain bool
}

func (t *TextRenderer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if t.Plain {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func (t *TextRenderer) severityColor(s checks.Severity) *color.Color {
	switch s {
	case checks.SeverityCritical:
		return t.color(color.FgRed, color.Bold)
	case checks.SeverityHigh:
		return t.color(color.FgRed)
	case checks.SeverityMedium:
		return t.color(color.FgYellow)
	case checks.SeverityLow:
		return t.color(color.FgCyan)
	default:
		return t.color(color.Faint)
	}
}

func (t *TextRenderer) scoreColor(score int) *color.Color {
	switch {
	case score >= 90:
		return t.color(color.FgGreen, color.Bold)
	case score >= 70:
		return t.color(color.FgYellow, color.Bold)
	default:
		return t.color(color.FgRed, color.Bold)
	}
}

func (t *TextRenderer) Render(w io.Writer, rep *engine.Report) error {
	bold := t.color(color.Bold)

	bold.Fprintf(w, "Repository health: %s\n", rep.Repo.Path)
	if rep.Repo.IsRepo && rep.Repo.Branch != "" {
		fmt.Fprintf(w, "Branch %s @ %s\n", rep.Repo.Branch, rep.Repo.HeadSHA)
	}
	fmt.Fprintln(w)

	t.scoreColor(rep.Score).Fprintf(w, "Score: %d/100 (%s)\n", rep.Score, rep.Grade)
	fmt.Fprintln(w)

	if deductions := nonZeroDeductions(rep.Categories); len(deductions) > 0 {
		fmt.Fprintln(w, "Deductions by category:")
		for _, cat := range checks.Categories() {
			if rep.Categories[cat] > 0 {
				fmt.Fprintf(w, "  %-10s -%d\n", cat, rep.Categories[cat])
			}
		}
		fmt.Fprintln(w)
	}

	if len(rep.Findings) == 0 {
		t.color(color.FgGreen).Fprintln(w, "No findings.")
	} else {
		bold.Fprintf(w, "Findings (%d):\n", len(rep.Findings))
		for _, f := range sortedBySeverity(rep.Findings) {
			t.severityColor(f.Severity).Fprintf(w, "  [%s]", strings.ToUpper(string(f.Severity)))
			fmt.Fprintf(w, " %s: %s\n", f.CheckID, f.Title)
			if f.Message != "" && f.Message != f.Title {
				fmt.Fprintf(w, "      %s\n", f.Message)
			}
			for _, ev := range f.Evidence {
				if len(ev.Files) > 0 {
					fmt.Fprintf(w, "      files: %s\n", strings.Join(ev.Files, ", "))
				}
			}
			if f.Recommendation != "" {
				fmt.Fprintf(w, "      fix: %s\n", f.Recommendation)
			}
		}
	}
	fmt.Fprintln(w)

	ran, skipped, failed := countExecutions(rep.Checks)
	fmt.Fprintf(w, "Checks: %d ran, %d skipped, %d failed\n", ran, skipped, failed)
	fmt.Fprintf(w, "Files: %d", rep.Metrics.FilesCount)
	if len(rep.Metrics.Languages) > 0 {
		fmt.Fprintf(w, "  Languages: %s", strings.Join(rep.Metrics.Languages, ", "))
	}
	fmt.Fprintln(w)
	for _, ex := range rep.Checks {
		if ex.Status == engine.CheckStatusFailed {
			t.color(color.FgRed).Fprintf(w, "  failed: %s (%s)\n", ex.CheckID, ex.Error)
		}
	}
	return nil
}

func nonZeroDeductions(cats map[checks.Category]int) []checks.Category {
	var out []checks.Category
	for _, cat := range checks.Categories() {
		if cats[cat] > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// sortedBySeverity orders findings most severe first, then by check id
// so output is stable across runs.
func sortedBySeverity(findings []checks.Finding) []checks.Finding {
	out := make([]checks.Finding, len(findings))
	copy(out, findings)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity.Rank() != out[j].Severity.Rank() {
			return out[i].Severity.Rank() > out[j].Severity.Rank()
		}
		return out[i].CheckID < out[j].CheckID
	})
	return out
}

func countExecutions(execs []engine.CheckExecution) (ran, skipped, failed int) {
	for _, ex := range execs {
		switch ex.Status {
		case engine.CheckStatusRan:
			ran++
		case engine.CheckStatusSkipped:
			skipped++
		case engine.CheckStatusFailed:
			failed++
		}
	}
	return
}
