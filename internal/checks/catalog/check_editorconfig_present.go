package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type editorconfigPresent struct{ meta }

func init() {
	register(&editorconfigPresent{meta{
		id:       "hygiene.editorconfig_present",
		title:    ".editorconfig present",
		category: checks.CategoryHygiene,
		severity: checks.SeverityInfo,
		weight:   2,
		description: `Checks for an .editorconfig file.

Keeps indentation, line endings, and charset consistent across editors
without relying on everyone's personal settings.`,
	}})
}

func (c *editorconfigPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists(".editorconfig") {
		return nil, nil
	}
	f := checks.NewFinding(c, "No .editorconfig file", "no .editorconfig file found at the repository root")
	f.Recommendation = "Add an .editorconfig to pin indentation and line-ending conventions."
	return []checks.Finding{f}, nil
}
