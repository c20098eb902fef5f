package engine

import (
	"repohealth/internal/checks"
)

// Score reduces a finding list and policy weight overrides to the final
// score in [0,100] plus per-category deduction subtotals.
//
// Each finding's effective weight is the policy override for its owning
// check id if present, else the weight stamped on the finding at emission.
// Weights are non-negative penalties; integer summation is order
// independent and the clamp is applied once at the end, so scheduling
// order never affects the result.
func Score(findings []checks.Finding, overrides map[string]int) (int, map[checks.Category]int) {
	categories := make(map[checks.Category]int, len(checks.Categories()))
	for _, cat := range checks.Categories() {
		categories[cat] = 0
	}

	total := 0
	for _, f := range findings {
		w := f.Weight
		if ov, ok := overrides[f.CheckID]; ok {
			w = ov
		}
		if w < 0 {
			w = 0
		}
		total += w
		categories[f.Category] += w
	}

	score := 100 - total
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, categories
}

// CountBySeverity tallies findings per severity level. Every level is
// present in the result so the report shape is stable.
func CountBySeverity(findings []checks.Finding) map[checks.Severity]int {
	counts := make(map[checks.Severity]int, len(checks.Severities()))
	for _, s := range checks.Severities() {
		counts[s] = 0
	}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}

// Grade maps a score to a letter grade.
//
//	A: 90-100, B: 80-89, C: 70-79, D: 55-69, F: 0-54
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 55:
		return "D"
	default:
		return "F"
	}
}
