package catalog

import (
	"context"
	"fmt"
	"time"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type outdatedHints struct{ meta }

func init() {
	register(&outdatedHints{meta{
		id:       "deps.outdated_hints",
		title:    "Dependencies look current",
		category: checks.CategoryDeps,
		severity: checks.SeverityLow,
		weight:   3,
		description: `Heuristic staleness hint based on lockfile age.

A lockfile untouched for over a year suggests dependencies haven't been
updated and may carry known vulnerabilities or compatibility drift. This
is a hint, not a vulnerability scan: a lockfile older than 12 months
carries the full weight, 6-12 months a reduced one.`,
	}})
}

var lockfileNames = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"poetry.lock",
	"uv.lock",
	"pdm.lock",
	"Pipfile.lock",
	"Cargo.lock",
	"go.sum",
	"Gemfile.lock",
	"composer.lock",
}

const (
	staleAfter   = 365 * 24 * time.Hour
	agingAfter   = 182 * 24 * time.Hour
	agingWeight  = 1
	monthsPerDay = 1.0 / 30.0
)

func (c *outdatedHints) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	var findings []checks.Finding
	now := time.Now()
	for _, name := range lockfileNames {
		st, ok := rc.FS.Stat(name)
		if !ok {
			continue
		}
		age := now.Sub(st.ModTime)
		if age < agingAfter {
			continue
		}
		months := int(age.Hours() / 24 * monthsPerDay)
		f := checks.NewFinding(c,
			fmt.Sprintf("%s not updated recently", name),
			fmt.Sprintf("%s was last modified about %d months ago", name, months))
		if age < staleAfter {
			f.Weight = agingWeight
		}
		f.Evidence = []checks.Evidence{{
			Description: fmt.Sprintf("%s last modified %s", name, st.ModTime.UTC().Format("2006-01-02")),
			Files:       []string{name},
			Details:     map[string]any{"age_months": months},
		}}
		f.Recommendation = "Refresh the lockfile and review dependency updates (dependabot or renovate can automate this)."
		findings = append(findings, f)
	}
	return findings, nil
}
