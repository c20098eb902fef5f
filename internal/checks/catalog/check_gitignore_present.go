package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type gitignorePresent struct{ meta }

func init() {
	register(&gitignorePresent{meta{
		id:       "hygiene.gitignore_present",
		title:    ".gitignore present",
		category: checks.CategoryHygiene,
		severity: checks.SeverityMedium,
		weight:   4,
		description: `Checks for a .gitignore file.

Without one, build artifacts, caches, and editor droppings end up in
the repository and pollute every diff.`,
	}})
}

func (c *gitignorePresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists(".gitignore") {
		return nil, nil
	}
	f := checks.NewFinding(c, "No .gitignore file", "no .gitignore file found at the repository root")
	f.Recommendation = "Add a .gitignore for your stack (gitignore.io generates good starting points)."
	return []checks.Finding{f}, nil
}
