package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type testsDetected struct{ meta }

func init() {
	register(&testsDetected{meta{
		id:       "tests.detected",
		title:    "Tests detected",
		category: checks.CategoryTests,
		severity: checks.SeverityHigh,
		weight:   8,
		description: `Checks if test files or directories exist.

Searches for test/tests/spec directories and language-specific test file
patterns (pytest, Jest, Go test files, JUnit classes, RSpec).

Tests prevent regressions, document expected behavior, and enable
confident refactoring.`,
	}})
}

var testDirs = []string{"tests", "test", "spec", "__tests__", "specs"}

var testFilePatterns = []string{
	"**/*_test.py",
	"**/test_*.py",
	"**/*.test.js",
	"**/*.spec.js",
	"**/*.test.ts",
	"**/*.spec.ts",
	"**/*_test.go",
	"**/Test*.java",
	"**/*Test.java",
	"**/*_spec.rb",
}

func (c *testsDetected) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	for _, dir := range testDirs {
		if rc.FS.HasDir(dir) {
			return nil, nil
		}
	}
	if rc.FS.Exists(testFilePatterns...) {
		return nil, nil
	}

	f := checks.NewFinding(c, "No tests detected", "No test files or directories found")
	f.Evidence = []checks.Evidence{{
		Description: "No test files or directories found",
		Details:     map[string]any{"searched_dirs": testDirs},
	}}
	f.Recommendation = "Add tests. Create a tests/ directory and write unit tests for core functionality."
	return []checks.Finding{f}, nil
}
