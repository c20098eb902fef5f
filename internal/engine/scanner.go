package engine

import (
	"context"
	"sort"
	"time"

	"repohealth/internal/checks"
	"repohealth/internal/config"
	"repohealth/internal/repo"
)

// Scanner runs the full scan pipeline: context build, check selection,
// concurrent execution, scoring, report assembly.
type Scanner struct {
	Registry *checks.Registry
	Version  string
}

func NewScanner(reg *checks.Registry) *Scanner {
	return &Scanner{Registry: reg, Version: "dev"}
}

// Scan analyzes the repository at path and returns the finished report.
//
// A returned error means the scan could not produce a report at all
// (precondition failure or cancellation); individual check failures are
// degraded to findings inside the report instead.
func (s *Scanner) Scan(ctx context.Context, path string, cfg *config.Config) (*Report, error) {
	start := time.Now()

	rc, err := repo.Build(ctx, path)
	if err != nil {
		return nil, err
	}

	selected, err := s.Registry.Select(cfg.Checks.Only, cfg.Checks.Skip)
	if err != nil {
		return nil, err
	}

	runner, err := NewRunner(cfg.Runtime.Concurrency)
	if err != nil {
		return nil, err
	}

	findings, execs, err := runner.Run(ctx, rc, selected)
	if err != nil {
		return nil, err
	}

	execs = append(execs, skippedExecutions(s.Registry, selected)...)
	sort.Slice(execs, func(i, j int) bool { return execs[i].CheckID < execs[j].CheckID })

	score, categories := Score(findings, cfg.Checks.Weights)

	rep := &Report{
		Meta: Meta{
			ToolVersion: s.Version,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			DurationMS:  time.Since(start).Milliseconds(),
		},
		Repo: RepoInfo{
			Path:    rc.Root,
			IsRepo:  rc.Git.IsRepo,
			Branch:  rc.Git.Branch,
			HeadSHA: rc.Git.HeadSHA,
		},
		Score:          score,
		Grade:          Grade(score),
		Categories:     categories,
		SeverityCounts: CountBySeverity(findings),
		Findings:       findings,
		Checks:         execs,
		Metrics: Metrics{
			FilesCount:      rc.FS.Count(),
			Languages:       rc.Stack.Languages,
			CIProviders:     rc.Stack.CIProviders,
			PackageManagers: rc.Stack.PackageManagers,
		},
	}
	return rep, nil
}

// skippedExecutions records registered checks that were excluded by
// --only/--skip/policy skip so the report states the full check roster.
// Skipped checks contribute neither findings nor penalties.
func skippedExecutions(reg *checks.Registry, selected []checks.Check) []CheckExecution {
	ran := make(map[string]struct{}, len(selected))
	for _, c := range selected {
		ran[c.ID()] = struct{}{}
	}

	var out []CheckExecution
	for _, c := range reg.List() {
		if _, ok := ran[c.ID()]; ok {
			continue
		}
		out = append(out, CheckExecution{CheckID: c.ID(), Status: CheckStatusSkipped})
	}
	return out
}
