package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type contributingPresent struct{ meta }

func init() {
	register(&contributingPresent{meta{
		id:       "docs.contributing_present",
		title:    "CONTRIBUTING guide present",
		category: checks.CategoryDocs,
		severity: checks.SeverityLow,
		weight:   3,
		description: `Checks if a CONTRIBUTING guide exists.

Searches for: CONTRIBUTING, CONTRIBUTING.md, .github/CONTRIBUTING.md.

A contributing guide sets expectations for PRs, documents code style and
process, and reduces friction for new contributors.`,
	}})
}

func (c *contributingPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists("CONTRIBUTING", "CONTRIBUTING.md", ".github/CONTRIBUTING.md") {
		return nil, nil
	}

	f := checks.NewFinding(c, "Missing CONTRIBUTING guide", "No CONTRIBUTING file found")
	f.Recommendation = "Add a CONTRIBUTING.md describing how to contribute, code style, and PR process."
	return []checks.Finding{f}, nil
}
