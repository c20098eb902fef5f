package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type dependabotPresent struct{ meta }

func init() {
	register(&dependabotPresent{meta{
		id:       "security.dependabot_present",
		title:    "Automated dependency updates",
		category: checks.CategorySecurity,
		severity: checks.SeverityLow,
		weight:   3,
		description: `Checks for dependabot or renovate configuration.

Automated update bots surface vulnerable and stale dependencies as pull
requests instead of leaving them to rot unnoticed.`,
	}})
}

var updateBotPatterns = []string{
	".github/dependabot.yml",
	".github/dependabot.yaml",
	"renovate.json",
	"renovate.json5",
	".renovaterc",
	".renovaterc.json",
	".github/renovate.json",
}

func (c *dependabotPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists(updateBotPatterns...) {
		return nil, nil
	}
	f := checks.NewFinding(c, "No automated dependency updates", "no dependabot or renovate configuration found")
	f.Evidence = []checks.Evidence{{
		Description: "No dependabot or renovate configuration found",
		Details:     map[string]any{"searched_patterns": updateBotPatterns},
	}}
	f.Recommendation = "Add .github/dependabot.yml (or a renovate config) to get automated dependency update PRs."
	return []checks.Finding{f}, nil
}
