package catalog

import (
	"context"
	"fmt"
	"strings"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type multiplePackageManagers struct{ meta }

func init() {
	register(&multiplePackageManagers{meta{
		id:       "deps.multiple_package_managers",
		title:    "Single package manager per ecosystem",
		category: checks.CategoryDeps,
		severity: checks.SeverityMedium,
		weight:   4,
		description: `Detects conflicting package manager lockfiles in one ecosystem.

Multiple lockfiles for the same ecosystem (npm + yarn + pnpm, or poetry +
pipenv) drift apart, confuse contributors about which install command to
use, and make builds nondeterministic.`,
	}})
}

var ecosystemLockfiles = []struct {
	ecosystem string
	lockfiles []string
}{
	{"javascript", []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb"}},
	{"python", []string{"poetry.lock", "Pipfile.lock", "uv.lock", "pdm.lock"}},
}

func (c *multiplePackageManagers) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	var findings []checks.Finding
	for _, eco := range ecosystemLockfiles {
		var present []string
		for _, name := range eco.lockfiles {
			if rc.FS.Exists(name) {
				present = append(present, name)
			}
		}
		if len(present) < 2 {
			continue
		}
		f := checks.NewFinding(c,
			fmt.Sprintf("Multiple %s package managers", eco.ecosystem),
			fmt.Sprintf("found %d competing lockfiles: %s", len(present), strings.Join(present, ", ")))
		f.Evidence = []checks.Evidence{{
			Description: fmt.Sprintf("Conflicting %s lockfiles", eco.ecosystem),
			Files:       present,
		}}
		f.Recommendation = "Pick one package manager and remove the other lockfiles."
		findings = append(findings, f)
	}
	return findings, nil
}
