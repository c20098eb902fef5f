package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

// Runner executes a selected set of checks against a shared repository
// context with bounded concurrency.
//
// Checks are read-only and independent, so they run in parallel; the
// finding list is still deterministic because results are collected per
// check and ordered by (check id, emission order), never by completion
// time.
type Runner struct {
	concurrency int
}

func NewRunner(concurrency int) (*Runner, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be >= 1, got %d", concurrency)
	}
	return &Runner{concurrency: concurrency}, nil
}

type checkOutcome struct {
	findings []checks.Finding
	exec     CheckExecution
}

// Run executes each check's logic against the shared context.
//
// Failure isolation: a check whose logic returns an error or panics does
// not abort the scan; the runner records a synthetic high-severity finding
// naming the check plus a failed execution record, and continues.
//
// Cancellation: if ctx is cancelled mid-scan, all partial results are
// discarded and the context error is returned; a partial finding set is
// never surfaced as if complete.
func (r *Runner) Run(ctx context.Context, rc *repo.Context, selected []checks.Check) ([]checks.Finding, []CheckExecution, error) {
	outcomes := make([]checkOutcome, len(selected))

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for i, c := range selected {
		i, c := i, c
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcomes[i] = runOne(ctx, rc, c)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var findings []checks.Finding
	execs := make([]CheckExecution, 0, len(selected))
	for _, o := range outcomes {
		findings = append(findings, o.findings...)
		execs = append(execs, o.exec)
	}

	// Selected checks arrive sorted by id, so collection order is already
	// deterministic; the stable sort pins the contract regardless of input
	// order while preserving emission order within a check.
	sort.SliceStable(findings, func(i, j int) bool { return findings[i].CheckID < findings[j].CheckID })
	sort.Slice(execs, func(i, j int) bool { return execs[i].CheckID < execs[j].CheckID })

	return findings, execs, nil
}

func runOne(ctx context.Context, rc *repo.Context, c checks.Check) (out checkOutcome) {
	start := time.Now()

	defer func() {
		out.exec.CheckID = c.ID()
		out.exec.DurationMS = time.Since(start).Milliseconds()
		out.exec.Findings = len(out.findings)
		if rec := recover(); rec != nil {
			out.findings = []checks.Finding{syntheticFailureFinding(c, fmt.Errorf("panic: %v", rec))}
			out.exec.Status = CheckStatusFailed
			out.exec.Error = summarizeError(fmt.Errorf("panic: %v", rec))
			out.exec.Findings = 1
		}
	}()

	findings, err := c.Run(ctx, rc)
	if err != nil {
		out.findings = []checks.Finding{syntheticFailureFinding(c, err)}
		out.exec.Status = CheckStatusFailed
		out.exec.Error = summarizeError(err)
		return out
	}

	out.findings = findings
	out.exec.Status = CheckStatusRan
	return out
}

// syntheticFailureFinding converts an internal check failure into a
// reportable finding. It carries weight 0: a crashed check is visible to
// severity policy gates but never penalizes the score.
func syntheticFailureFinding(c checks.Check, err error) checks.Finding {
	return checks.Finding{
		CheckID:  c.ID(),
		Title:    "Internal check failure",
		Severity: checks.SeverityHigh,
		Category: c.Category(),
		Weight:   0,
		Message:  fmt.Sprintf("check %s failed internally: %s", c.ID(), summarizeError(err)),
	}
}

const maxErrorSummaryLen = 200

// summarizeError reduces an error to a single non-sensitive line.
func summarizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	if len(msg) > maxErrorSummaryLen {
		msg = msg[:maxErrorSummaryLen] + "..."
	}
	return msg
}
