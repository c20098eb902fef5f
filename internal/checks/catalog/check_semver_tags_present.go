package catalog

import (
	"context"
	"regexp"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type semverTagsPresent struct{ meta }

func init() {
	register(&semverTagsPresent{meta{
		id:       "hygiene.semver_tags_present",
		title:    "Semver release tags",
		category: checks.CategoryHygiene,
		severity: checks.SeverityLow,
		weight:   3,
		description: `Checks for semantic-version git tags (v1.2.3 or 1.2.3).

Versioned tags give users stable points to depend on and make changelogs
and bisects meaningful. Abstains when the directory is not a git
repository.`,
	}})
}

var semverTagPattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+`)

func (c *semverTagsPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if !rc.Git.IsRepo {
		return nil, nil
	}
	for _, tag := range rc.Git.Tags {
		if semverTagPattern.MatchString(tag) {
			return nil, nil
		}
	}
	f := checks.NewFinding(c, "No semver release tags", "no git tags matching semantic versioning were found")
	f.Evidence = []checks.Evidence{{
		Description: "No git tags matching semantic versioning",
		Details:     map[string]any{"tag_count": len(rc.Git.Tags)},
	}}
	f.Recommendation = "Tag releases with semantic versions (git tag v1.0.0) so users can pin to them."
	return []checks.Finding{f}, nil
}
