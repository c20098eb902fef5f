package catalog

import (
	"context"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type securityPolicyPresent struct{ meta }

func init() {
	register(&securityPolicyPresent{meta{
		id:       "docs.security_policy_present",
		title:    "Security policy present",
		category: checks.CategoryDocs,
		severity: checks.SeverityLow,
		weight:   3,
		description: `Checks if a security policy exists.

Searches for: SECURITY.md, .github/SECURITY.md, SECURITY.

A security policy provides clear vulnerability reporting instructions, sets
expectations for response times, and reduces the risk of public
vulnerability disclosure.`,
	}})
}

func (c *securityPolicyPresent) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	if rc.FS.Exists("SECURITY.md", ".github/SECURITY.md", "SECURITY") {
		return nil, nil
	}

	f := checks.NewFinding(c, "Missing security policy", "No SECURITY.md file found")
	f.Recommendation = "Add a SECURITY.md with vulnerability reporting instructions."
	return []checks.Finding{f}, nil
}
