package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repohealth/internal/checks"
	"repohealth/internal/config"
	"repohealth/internal/repo"
)

// absentFileCheck reports a finding when the named file is missing.
func absentFileCheck(id string, cat checks.Category, sev checks.Severity, weight int, file string) checks.Check {
	c := &fakeCheck{id: id, category: cat, severity: sev, weight: weight}
	c.run = func(_ context.Context, rc *repo.Context) ([]checks.Finding, error) {
		if rc.FS.Exists(file) {
			return nil, nil
		}
		return []checks.Finding{checks.NewFinding(c, file+" missing", file+" missing")}, nil
	}
	return c
}

func scanRegistry(t *testing.T) *checks.Registry {
	t.Helper()
	reg := checks.NewRegistry()
	reg.MustRegister(absentFileCheck("docs.readme_present", checks.CategoryDocs, checks.SeverityHigh, 8, "README.md"))
	reg.MustRegister(absentFileCheck("docs.license_present", checks.CategoryDocs, checks.SeverityMedium, 4, "LICENSE"))
	reg.MustRegister(absentFileCheck("hygiene.gitignore_present", checks.CategoryHygiene, checks.SeverityMedium, 4, ".gitignore"))
	return reg
}

func TestScanHealthyTree(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"README.md", "LICENSE", ".gitignore"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644))
	}

	s := NewScanner(scanRegistry(t))
	s.Version = "1.2.3"
	rep, err := s.Scan(context.Background(), root, config.New())
	require.NoError(t, err)

	assert.Equal(t, 100, rep.Score)
	assert.Equal(t, "A", rep.Grade)
	assert.Empty(t, rep.Findings)
	assert.Equal(t, "1.2.3", rep.Meta.ToolVersion)
	assert.NotEmpty(t, rep.Meta.Timestamp)
	assert.Equal(t, 3, rep.Metrics.FilesCount)

	require.Len(t, rep.Checks, 3)
	for _, ex := range rep.Checks {
		assert.Equal(t, CheckStatusRan, ex.Status)
	}
}

func TestScanEmptyTreeDeducts(t *testing.T) {
	s := NewScanner(scanRegistry(t))
	rep, err := s.Scan(context.Background(), t.TempDir(), config.New())
	require.NoError(t, err)

	assert.Equal(t, 84, rep.Score)
	assert.Equal(t, "B", rep.Grade)
	assert.Len(t, rep.Findings, 3)
	assert.Equal(t, 12, rep.Categories[checks.CategoryDocs])
	assert.Equal(t, 4, rep.Categories[checks.CategoryHygiene])
	assert.Equal(t, 1, rep.SeverityCounts[checks.SeverityHigh])
	assert.Equal(t, 2, rep.SeverityCounts[checks.SeverityMedium])
}

func TestScanSkipRecordsSkippedExecutions(t *testing.T) {
	cfg := config.New()
	cfg.Checks.Skip = []string{"docs.license_present"}

	s := NewScanner(scanRegistry(t))
	rep, err := s.Scan(context.Background(), t.TempDir(), cfg)
	require.NoError(t, err)

	statuses := make(map[string]CheckStatus)
	for _, ex := range rep.Checks {
		statuses[ex.CheckID] = ex.Status
	}
	assert.Equal(t, CheckStatusSkipped, statuses["docs.license_present"])
	assert.Equal(t, CheckStatusRan, statuses["docs.readme_present"])

	for _, f := range rep.Findings {
		assert.NotEqual(t, "docs.license_present", f.CheckID, "skipped checks contribute no findings")
	}
}

func TestScanUnknownOnlyIDFails(t *testing.T) {
	cfg := config.New()
	cfg.Checks.Only = []string{"docs.nope"}

	s := NewScanner(scanRegistry(t))
	_, err := s.Scan(context.Background(), t.TempDir(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check not found")
}

func TestScanMissingPath(t *testing.T) {
	s := NewScanner(scanRegistry(t))
	_, err := s.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), config.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrPathNotFound)
}

func TestScanWeightOverridesApply(t *testing.T) {
	cfg := config.New()
	cfg.Checks.Weights = map[string]int{"docs.readme_present": 0}

	s := NewScanner(scanRegistry(t))
	rep, err := s.Scan(context.Background(), t.TempDir(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 92, rep.Score, "readme penalty neutralized by override")
}
