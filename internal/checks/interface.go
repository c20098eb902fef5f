package checks

import (
	"context"

	"repohealth/internal/repo"
)

// Check is a pure, independent analysis unit identified by a stable id.
//
// Checks read the shared repository context and emit zero or more findings.
// A check MUST NOT mutate the context, hold state across invocations, or
// depend on another check's output; that independence is what makes
// concurrent execution and isolated failure handling safe.
type Check interface {
	// ID is the stable check identifier, category-dotted (e.g. "docs.readme_present").
	ID() string
	Title() string
	Category() Category
	// Severity is the default severity of findings from this check.
	Severity() Severity
	// Weight is the default penalty deducted per finding, as a non-negative integer.
	Weight() int
	// Description is the human explanation shown by "checks show".
	Description() string

	// Run inspects the context and returns findings. An empty slice means
	// the check passed. Errors are isolated by the runner and converted to
	// a synthetic high-severity finding; they never abort the scan.
	Run(ctx context.Context, rc *repo.Context) ([]Finding, error)
}

// NewFinding builds a finding stamped with the check's identity, default
// severity and default weight. Checks that grade severity or weight adjust
// the returned value before emitting it.
func NewFinding(c Check, title, message string) Finding {
	return Finding{
		CheckID:  c.ID(),
		Title:    title,
		Severity: c.Severity(),
		Category: c.Category(),
		Weight:   c.Weight(),
		Message:  message,
	}
}
