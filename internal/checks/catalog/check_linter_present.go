package catalog

import (
	"context"
	"strings"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type linterPresent struct{ meta }

func init() {
	register(&linterPresent{meta{
		id:       "tests.linter_present",
		title:    "Linter configured",
		category: checks.CategoryTests,
		severity: checks.SeverityMedium,
		weight:   4,
		description: `Checks for linter or formatter configuration.

Looks for config files of common linters and formatters (ruff, eslint,
golangci-lint, rubocop, clippy, prettier, black and friends), either as
standalone files or as tool sections inside pyproject.toml / package.json.

Consistent style tooling keeps diffs reviewable and catches bug classes
before they land.`,
	}})
}

var linterConfigPatterns = []string{
	".ruff.toml",
	"ruff.toml",
	".flake8",
	".pylintrc",
	"setup.cfg",
	".eslintrc",
	".eslintrc.js",
	".eslintrc.cjs",
	".eslintrc.json",
	".eslintrc.yml",
	".eslintrc.yaml",
	"eslint.config.js",
	"eslint.config.mjs",
	".golangci.yml",
	".golangci.yaml",
	".golangci.toml",
	".rubocop.yml",
	"rustfmt.toml",
	".rustfmt.toml",
	"clippy.toml",
	".prettierrc",
	".prettierrc.json",
	".prettierrc.yml",
	"biome.json",
	".clang-format",
	".clang-tidy",
}

// linter tool sections that live inside shared manifest files.
var embeddedLinterSections = map[string][]string{
	"pyproject.toml": {"[tool.ruff", "[tool.black", "[tool.flake8", "[tool.pylint", "[tool.mypy", "[tool.isort"},
	"package.json":   {`"eslintConfig"`, `"prettier"`, `"standard"`, `"xo"`},
}

func (c *linterPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists(linterConfigPatterns...) {
		return nil, nil
	}

	for file, markers := range embeddedLinterSections {
		content, ok := rc.FS.ReadFile(file)
		if !ok {
			continue
		}
		for _, marker := range markers {
			if strings.Contains(content, marker) {
				return nil, nil
			}
		}
	}

	f := checks.NewFinding(c, "No linter configuration found", "No linter or formatter configuration detected")
	f.Evidence = []checks.Evidence{{
		Description: "No linter or formatter configuration detected",
		Details: map[string]any{
			"searched_patterns": linterConfigPatterns,
		},
	}}
	f.Recommendation = "Configure a linter for your stack (ruff for Python, eslint for JavaScript, golangci-lint for Go)."
	return []checks.Finding{f}, nil
}
