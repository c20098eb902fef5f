package checks

import (
	"fmt"
	"strings"
)

// Severity ranks a finding for policy thresholding.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank maps each severity to its position on the ordered scale.
// info < low < medium < high < critical.
var severityRank = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Severities lists all severities in ascending order.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

func (s Severity) Rank() int {
	r, ok := severityRank[s]
	if !ok {
		return -1
	}
	return r
}

// AtLeast reports whether s is at or above threshold on the severity scale.
func (s Severity) AtLeast(threshold Severity) bool {
	sr, tr := s.Rank(), threshold.Rank()
	return sr >= 0 && tr >= 0 && sr >= tr
}

func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := severityRank[s]; !ok {
		return "", fmt.Errorf("unknown severity %q (must be one of: info, low, medium, high, critical)", raw)
	}
	return s, nil
}

// Category groups checks for subtotal reporting.
type Category string

const (
	CategoryDocs     Category = "docs"
	CategoryCI       Category = "ci"
	CategoryTests    Category = "tests"
	CategoryDeps     Category = "deps"
	CategorySecurity Category = "security"
	CategoryHygiene  Category = "hygiene"
)

// Categories lists the fixed category enumeration in reporting order.
func Categories() []Category {
	return []Category{CategoryDocs, CategoryCI, CategoryTests, CategoryDeps, CategorySecurity, CategoryHygiene}
}

func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}
