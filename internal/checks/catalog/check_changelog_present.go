package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type changelogPresent struct{ meta }

func init() {
	register(&changelogPresent{meta{
		id:       "hygiene.changelog_present",
		title:    "Changelog present",
		category: checks.CategoryHygiene,
		severity: checks.SeverityLow,
		weight:   3,
		description: `Checks for a changelog file.

A changelog tells users what changed between releases without making
them read commit history.`,
	}})
}

var changelogPatterns = []string{
	"CHANGELOG",
	"CHANGELOG.md",
	"CHANGELOG.rst",
	"CHANGELOG.txt",
	"CHANGES.md",
	"HISTORY.md",
	"NEWS.md",
	"changelog.md",
}

func (c *changelogPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists(changelogPatterns...) {
		return nil, nil
	}
	f := checks.NewFinding(c, "No changelog found", "no changelog file found at the repository root")
	f.Evidence = []checks.Evidence{{
		Description: "No changelog file found",
		Details:     map[string]any{"searched_patterns": changelogPatterns},
	}}
	f.Recommendation = "Keep a CHANGELOG.md (keepachangelog.com is a good format)."
	return []checks.Finding{f}, nil
}
