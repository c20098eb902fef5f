package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type licensePresent struct{ meta }

func init() {
	register(&licensePresent{meta{
		id:       "docs.license_present",
		title:    "LICENSE file present",
		category: checks.CategoryDocs,
		severity: checks.SeverityMedium,
		weight:   4,
		description: `Checks if a LICENSE file exists in the repository root.

Searches for: LICENSE, LICENSE.md, LICENSE.txt, LICENCE (case variants).

A license grants usage rights and is essential for open source compliance,
legal clarity for contributors and users, and package registry requirements.`,
	}})
}

func (c *licensePresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	patterns := []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "LICENCE.md", "license", "license.md"}
	if rc.FS.Exists(patterns...) {
		return nil, nil
	}

	f := checks.NewFinding(c, "Missing LICENSE", "No LICENSE file found in repository root")
	f.Evidence = []checks.Evidence{{Description: "No LICENSE file found in repository root"}}
	f.Recommendation = "Add a LICENSE file."
	f.Refs = []string{"https://choosealicense.com/"}
	return []checks.Finding{f}, nil
}
