package checks

// Evidence supports a finding with file references and structured detail.
// Evidence never contains raw secret content, only paths and pattern names.
type Evidence struct {
	Description string `json:"description"`
	// Files lists repo-relative paths supporting the finding.
	Files []string `json:"files,omitempty"`
	// Details contains structured data supporting the finding (lists, counts).
	Details map[string]any `json:"details,omitempty"`
}

// Finding is one reported issue from a check. Findings are append-only
// outputs; they are never mutated after the owning check emits them.
type Finding struct {
	CheckID  string   `json:"check_id"`
	Title    string   `json:"title,omitempty"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	// Weight is the non-negative penalty this finding deducts from the
	// score, stamped at emission (the check's default, or a graded value
	// for checks that scale the penalty). Policy weight overrides replace
	// it at scoring time.
	Weight         int        `json:"weight"`
	Message        string     `json:"message"`
	Evidence       []Evidence `json:"evidence,omitempty"`
	Recommendation string     `json:"recommendation,omitempty"`
	Refs           []string   `json:"refs,omitempty"`
}
