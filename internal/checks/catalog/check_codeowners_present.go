package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type codeownersPresent struct{ meta }

func init() {
	register(&codeownersPresent{meta{
		id:       "security.codeowners_present",
		title:    "CODEOWNERS file present",
		category: checks.CategorySecurity,
		severity: checks.SeverityLow,
		weight:   3,
		description: `Checks for a CODEOWNERS file.

CODEOWNERS routes review requests to the people responsible for each
path and lets branch protection require owner approval on changes.`,
	}})
}

var codeownersPatterns = []string{
	"CODEOWNERS",
	".github/CODEOWNERS",
	"docs/CODEOWNERS",
}

func (c *codeownersPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists(codeownersPatterns...) {
		return nil, nil
	}
	f := checks.NewFinding(c, "No CODEOWNERS file", "no CODEOWNERS file found")
	f.Evidence = []checks.Evidence{{
		Description: "No CODEOWNERS file found",
		Details:     map[string]any{"searched_patterns": codeownersPatterns},
	}}
	f.Recommendation = "Add a CODEOWNERS file so reviews are routed to the right maintainers."
	return []checks.Finding{f}, nil
}
