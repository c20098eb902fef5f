package catalog

import (
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type badgesPresent struct{ meta }

func init() {
	register(&badgesPresent{meta{
		id:       "ci.badges_present",
		title:    "Status badges in README",
		category: checks.CategoryCI,
		severity: checks.SeverityInfo,
		weight:   2,
		description: `Checks if the README contains status badges.

Parses the README as Markdown and looks for badge images from shields.io,
GitHub Actions workflow status URLs, codecov, and coveralls.

Badges provide at-a-glance project health info: build status, test
coverage, and version information.

If the repository has no README this check abstains; the README check
reports that on its own.`,
	}})
}

// badgeHosts are URL fragments that identify a status badge image.
var badgeHosts = []string{
	"shields.io",
	"img.shields.io",
	"codecov.io",
	"coveralls.io",
	"badge",
	"/workflows/",
	"/actions/",
}

func (c *badgesPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	var content string
	found := false
	for _, pattern := range readmePatterns {
		files := rc.FS.Glob(pattern)
		if len(files) == 0 {
			continue
		}
		if s, ok := rc.FS.ReadFile(files[0]); ok {
			content = s
			found = true
			break
		}
	}
	if !found {
		// No README; docs.readme_present reports that.
		return nil, nil
	}

	if readmeHasBadge([]byte(content)) {
		return nil, nil
	}

	f := checks.NewFinding(c, "No status badges in README", "README does not contain recognizable status badges")
	f.Recommendation = "Add status badges (build, coverage, version) to README for quick health visibility."
	return []checks.Finding{f}, nil
}

// readmeHasBadge parses markdown and reports whether any image node points
// at a known badge host.
func readmeHasBadge(source []byte) bool {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	has := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || has {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		dest := strings.ToLower(string(img.Destination))
		if !strings.HasPrefix(dest, "http://") && !strings.HasPrefix(dest, "https://") {
			return ast.WalkContinue, nil
		}
		for _, host := range badgeHosts {
			if strings.Contains(dest, host) {
				has = true
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return has
}
