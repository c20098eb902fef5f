package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type readmePresent struct{ meta }

func init() {
	register(&readmePresent{meta{
		id:       "docs.readme_present",
		title:    "README file present",
		category: checks.CategoryDocs,
		severity: checks.SeverityHigh,
		weight:   8,
		description: `Checks if a README file exists in the repository root.

Searches for: README, README.md, README.rst, README.txt (case variants).

A README is essential for any project as it provides a project overview,
installation instructions, basic usage examples, and links to further
documentation.`,
	}})
}

var readmePatterns = []string{"README", "README.md", "README.rst", "README.txt", "readme", "readme.md", "Readme.md"}

func (c *readmePresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists(readmePatterns...) {
		return nil, nil
	}

	f := checks.NewFinding(c, "Missing README", "No README file found in repository root")
	f.Evidence = []checks.Evidence{{Description: "No README file found in repository root"}}
	f.Recommendation = "Create a README.md with project overview, installation, and usage instructions."
	f.Refs = []string{"https://www.makeareadme.com/"}
	return []checks.Finding{f}, nil
}
