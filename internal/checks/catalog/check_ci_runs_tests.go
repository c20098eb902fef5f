package catalog

import (
	"context"
	"regexp"

	"gopkg.in/yaml.v3"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type ciRunsTests struct{ meta }

func init() {
	register(&ciRunsTests{meta{
		id:       "tests.ci_runs_tests",
		title:    "CI runs tests",
		category: checks.CategoryTests,
		severity: checks.SeverityMedium,
		weight:   5,
		description: `Checks if CI configuration runs tests.

Parses CI config YAML and inspects run/script steps for test commands
(pytest, npm test, go test, cargo test, coverage tools and friends).

Running tests in CI ensures tests are not skipped locally, all PRs are
validated, and the test environment is consistent.

If the repository has no CI configuration this check abstains; the CI
config check reports that on its own.`,
	}})
}

var testCommandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpytest\b`),
	regexp.MustCompile(`(?i)\bnpm\s+test\b`),
	regexp.MustCompile(`(?i)\byarn\s+test\b`),
	regexp.MustCompile(`(?i)\bgo\s+test\b`),
	regexp.MustCompile(`(?i)\bcargo\s+test\b`),
	regexp.MustCompile(`(?i)\bmvn\s+test\b`),
	regexp.MustCompile(`(?i)\bgradle\s+test\b`),
	regexp.MustCompile(`(?i)\brspec\b`),
	regexp.MustCompile(`(?i)\bphpunit\b`),
	regexp.MustCompile(`(?i)\bcoverage\b`),
	regexp.MustCompile(`(?i)\bjest\b`),
	regexp.MustCompile(`(?i)\bmocha\b`),
	regexp.MustCompile(`(?i)\bvitest\b`),
}

var ciWorkflowPatterns = []string{
	".github/workflows/*.yml",
	".github/workflows/*.yaml",
	".gitlab-ci.yml",
	".circleci/config.yml",
	".travis.yml",
}

func (c *ciRunsTests) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	ciFiles := rc.FS.FindFiles(ciWorkflowPatterns...)
	if len(ciFiles) == 0 {
		// No CI configuration; ci.config_present reports that.
		return nil, nil
	}

	for _, file := range ciFiles {
		content, ok := rc.FS.ReadFile(file)
		if !ok {
			continue
		}
		for _, cmd := range extractRunCommands([]byte(content)) {
			if isTestCommand(cmd) {
				return nil, nil
			}
		}
	}

	f := checks.NewFinding(c, "CI does not appear to run tests", "CI configuration files don't contain recognizable test commands")
	f.Evidence = []checks.Evidence{{
		Description: "CI configuration files don't contain recognizable test commands",
		Files:       capFiles(ciFiles, 5),
	}}
	f.Recommendation = "Add test steps to your CI workflow (e.g., 'pytest' or 'npm test')."
	return []checks.Finding{f}, nil
}

func isTestCommand(cmd string) bool {
	for _, re := range testCommandPatterns {
		if re.MatchString(cmd) {
			return true
		}
	}
	return false
}

// extractRunCommands walks a CI YAML document and collects the command
// strings under run/script keys (GitHub Actions run steps, GitLab/Travis
// script lists). An unparseable file degrades to treating the whole
// content as one command so malformed-but-working configs still match.
func extractRunCommands(content []byte) []string {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return []string{string(content)}
	}

	var cmds []string
	var walk func(n *yaml.Node)
	walk = func(n *yaml.Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, child := range n.Content {
				walk(child)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				key, val := n.Content[i], n.Content[i+1]
				if key.Kind == yaml.ScalarNode && (key.Value == "run" || key.Value == "script") {
					cmds = append(cmds, scalarValues(val)...)
					continue
				}
				walk(val)
			}
		}
	}
	walk(&root)
	return cmds
}

func scalarValues(n *yaml.Node) []string {
	switch n.Kind {
	case yaml.ScalarNode:
		return []string{n.Value}
	case yaml.SequenceNode:
		var out []string
		for _, child := range n.Content {
			out = append(out, scalarValues(child)...)
		}
		return out
	default:
		return nil
	}
}

func capFiles(files []string, n int) []string {
	if len(files) <= n {
		return files
	}
	return files[:n]
}
