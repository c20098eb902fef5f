package catalog

import (
	"context"
	"fmt"
	"strings"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type lockfilePresent struct{ meta }

func init() {
	register(&lockfilePresent{meta{
		id:       "deps.lockfile_present",
		title:    "Lockfile present",
		category: checks.CategoryDeps,
		severity: checks.SeverityMedium,
		weight:   6,
		description: `Checks for a dependency lockfile matching each manifest.

Only manifests that are actually present are considered; a repository
with no dependency manifests abstains. Lockfiles pin exact dependency
versions for reproducible installs and guard against surprise upgrades.`,
	}})
}

// manifestLockfiles maps each dependency manifest to the lockfiles that
// can pin it. Checked in order; the first present manifest without any
// of its lockfiles produces a finding.
var manifestLockfiles = []struct {
	manifest  string
	lockfiles []string
}{
	{"package.json", []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb", "bun.lock"}},
	{"pyproject.toml", []string{"poetry.lock", "uv.lock", "pdm.lock", "requirements.txt"}},
	{"Pipfile", []string{"Pipfile.lock"}},
	{"Cargo.toml", []string{"Cargo.lock"}},
	{"go.mod", []string{"go.sum"}},
	{"Gemfile", []string{"Gemfile.lock"}},
	{"composer.json", []string{"composer.lock"}},
}

func (c *lockfilePresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	var findings []checks.Finding
	for _, m := range manifestLockfiles {
		if !rc.FS.Exists(m.manifest) {
			continue
		}
		if rc.FS.Exists(m.lockfiles...) {
			continue
		}
		f := checks.NewFinding(c,
			fmt.Sprintf("No lockfile for %s", m.manifest),
			fmt.Sprintf("%s is present but no matching lockfile was found", m.manifest))
		f.Evidence = []checks.Evidence{{
			Description: fmt.Sprintf("%s has no lockfile (%s)", m.manifest, strings.Join(m.lockfiles, ", ")),
			Files:       []string{m.manifest},
		}}
		f.Recommendation = fmt.Sprintf("Commit a lockfile (%s) to pin dependency versions.", strings.Join(m.lockfiles, " or "))
		findings = append(findings, f)
	}
	return findings, nil
}
