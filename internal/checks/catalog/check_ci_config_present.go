package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type ciConfigPresent struct{ meta }

func init() {
	register(&ciConfigPresent{meta{
		id:       "ci.config_present",
		title:    "CI/CD configuration present",
		category: checks.CategoryCI,
		severity: checks.SeverityHigh,
		weight:   10,
		description: `Checks if any CI/CD configuration exists.

Searches for GitHub Actions workflows, GitLab CI, CircleCI, Travis CI,
Azure Pipelines, and Jenkins configuration files.

Continuous integration ensures code is tested on every change, builds run
in a consistent environment, and bugs are caught early.`,
	}})
}

func (c *ciConfigPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if len(rc.Stack.CIProviders) > 0 {
		return nil, nil
	}

	f := checks.NewFinding(c, "No CI/CD configuration found", "No CI/CD configuration files detected")
	f.Evidence = []checks.Evidence{{
		Description: "No CI/CD configuration files detected",
		Details:     map[string]any{"searched_patterns": repo.CIConfigPatterns()},
	}}
	f.Recommendation = "Set up CI/CD. For GitHub, create .github/workflows/ci.yml"
	return []checks.Finding{f}, nil
}
