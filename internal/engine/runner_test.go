package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

// fakeCheck is a configurable check for runner tests.
type fakeCheck struct {
	id       string
	category checks.Category
	severity checks.Severity
	weight   int
	run      func(ctx context.Context, rc *repo.Context) ([]checks.Finding, error)
}

func (f *fakeCheck) ID() string                { return f.id }
func (f *fakeCheck) Title() string             { return f.id }
func (f *fakeCheck) Category() checks.Category { return f.category }
func (f *fakeCheck) Severity() checks.Severity { return f.severity }
func (f *fakeCheck) Weight() int               { return f.weight }
func (f *fakeCheck) Description() string       { return "fake" }
func (f *fakeCheck) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	return f.run(ctx, rc)
}

func passing(id string) *fakeCheck {
	return &fakeCheck{
		id: id, category: checks.CategoryDocs, severity: checks.SeverityLow, weight: 3,
		run: func(context.Context, *repo.Context) ([]checks.Finding, error) { return nil, nil },
	}
}

func emitting(id string, n int) *fakeCheck {
	c := &fakeCheck{id: id, category: checks.CategoryDocs, severity: checks.SeverityLow, weight: 3}
	c.run = func(context.Context, *repo.Context) ([]checks.Finding, error) {
		var out []checks.Finding
		for i := 0; i < n; i++ {
			out = append(out, checks.NewFinding(c, "t", "m"))
		}
		return out, nil
	}
	return c
}

func testContext(t *testing.T) *repo.Context {
	t.Helper()
	rc, err := repo.Build(context.Background(), t.TempDir())
	require.NoError(t, err)
	return rc
}

func TestNewRunnerRejectsZeroConcurrency(t *testing.T) {
	_, err := NewRunner(0)
	require.Error(t, err)
}

func TestRunCollectsFindingsSortedByCheckID(t *testing.T) {
	runner, err := NewRunner(4)
	require.NoError(t, err)

	selected := []checks.Check{emitting("tests.z", 1), emitting("docs.a", 2), passing("ci.b")}
	findings, execs, err := runner.Run(context.Background(), testContext(t), selected)
	require.NoError(t, err)

	var ids []string
	for _, f := range findings {
		ids = append(ids, f.CheckID)
	}
	assert.Equal(t, []string{"docs.a", "docs.a", "tests.z"}, ids)

	require.Len(t, execs, 3)
	assert.Equal(t, "ci.b", execs[0].CheckID)
	assert.Equal(t, CheckStatusRan, execs[0].Status)
	assert.Equal(t, 2, execs[1].Findings)
}

func TestRunDeterministicAcrossConcurrency(t *testing.T) {
	selected := []checks.Check{
		emitting("docs.a", 1), emitting("ci.b", 2), emitting("tests.c", 1),
		emitting("deps.d", 3), emitting("hygiene.e", 1),
	}
	rc := testContext(t)

	var baseline []checks.Finding
	for _, concurrency := range []int{1, 2, 8} {
		runner, err := NewRunner(concurrency)
		require.NoError(t, err)
		findings, _, err := runner.Run(context.Background(), rc, selected)
		require.NoError(t, err)
		if baseline == nil {
			baseline = findings
			continue
		}
		assert.Equal(t, baseline, findings, "concurrency %d changed the finding order", concurrency)
	}
}

func TestRunIsolatesErroringCheck(t *testing.T) {
	failing := &fakeCheck{
		id: "deps.broken", category: checks.CategoryDeps, severity: checks.SeverityMedium, weight: 6,
		run: func(context.Context, *repo.Context) ([]checks.Finding, error) {
			return nil, errors.New("boom\nsecond line never surfaces")
		},
	}
	runner, err := NewRunner(2)
	require.NoError(t, err)

	findings, execs, err := runner.Run(context.Background(), testContext(t), []checks.Check{failing, emitting("docs.a", 1)})
	require.NoError(t, err, "a failing check must not abort the scan")

	require.Len(t, findings, 2)
	synthetic := findings[0]
	if synthetic.CheckID != "deps.broken" {
		synthetic = findings[1]
	}
	assert.Equal(t, "deps.broken", synthetic.CheckID)
	assert.Equal(t, checks.SeverityHigh, synthetic.Severity)
	assert.Equal(t, 0, synthetic.Weight, "synthetic failures never penalize the score")
	assert.Contains(t, synthetic.Message, "check deps.broken failed internally")
	assert.NotContains(t, synthetic.Message, "second line")

	var failedExec CheckExecution
	for _, ex := range execs {
		if ex.CheckID == "deps.broken" {
			failedExec = ex
		}
	}
	assert.Equal(t, CheckStatusFailed, failedExec.Status)
	assert.Equal(t, "boom", failedExec.Error)
}

func TestRunIsolatesPanickingCheck(t *testing.T) {
	panicking := &fakeCheck{
		id: "hygiene.panics", category: checks.CategoryHygiene, severity: checks.SeverityLow, weight: 3,
		run: func(context.Context, *repo.Context) ([]checks.Finding, error) {
			panic("nil map write")
		},
	}
	runner, err := NewRunner(2)
	require.NoError(t, err)

	findings, execs, err := runner.Run(context.Background(), testContext(t), []checks.Check{panicking, passing("docs.a")})
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.Equal(t, "hygiene.panics", findings[0].CheckID)
	assert.Equal(t, checks.SeverityHigh, findings[0].Severity)

	for _, ex := range execs {
		if ex.CheckID == "hygiene.panics" {
			assert.Equal(t, CheckStatusFailed, ex.Status)
			assert.Contains(t, ex.Error, "panic")
		}
	}
}

func TestRunCancelledContextDiscardsPartials(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, err := NewRunner(2)
	require.NoError(t, err)

	findings, execs, err := runner.Run(ctx, testContext(t), []checks.Check{emitting("docs.a", 1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, findings)
	assert.Nil(t, execs)
}
