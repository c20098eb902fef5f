package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"repohealth/internal/checks"
	"repohealth/internal/repo"
)

type secretsSuspected struct{ meta }

func init() {
	register(&secretsSuspected{meta{
		id:       "security.secrets_suspected",
		title:    "No secrets in tracked files",
		category: checks.CategorySecurity,
		severity: checks.SeverityCritical,
		weight:   10,
		description: `Scans tracked files for likely committed credentials.

Matches a conservative set of high-confidence patterns: cloud access key
ids, GitHub/Slack/Stripe token prefixes, private key headers, and inline
api_key/password assignments. Generated and vendored files are skipped.

Committed secrets stay in git history forever and must be rotated; this
check reports file paths only, never the matched values.`,
	}})
}

type secretPattern struct {
	name string
	re   *regexp.Regexp
}

var secretPatterns = []secretPattern{
	{"AWS access key id", regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)},
	{"GitHub token", regexp.MustCompile(`\bgh[pos]_[A-Za-z0-9]{36,}\b`)},
	{"Slack token", regexp.MustCompile(`\bxox[baprs]-[A-Za-z0-9-]{10,}\b`)},
	{"Stripe live key", regexp.MustCompile(`\bsk_live_[A-Za-z0-9]{20,}\b`)},
	{"private key header", regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`)},
	{"hardcoded credential", regexp.MustCompile(`(?i)\b(api[_-]?key|api[_-]?secret|auth[_-]?token|password)\b\s*[:=]\s*["'][^"'\s]{12,}["']`)},
}

// skip generated, vendored, and binary-leaning paths where matches are
// near-certain false positives (lockfile hashes, minified bundles).
var secretSkipSubstrings = []string{
	"node_modules/",
	"vendor/",
	"dist/",
	"build/",
	".min.js",
	".min.css",
	".map",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"poetry.lock",
	"Cargo.lock",
	"go.sum",
	"composer.lock",
	".png",
	".jpg",
	".jpeg",
	".gif",
	".ico",
	".pdf",
	".zip",
	".gz",
	".woff",
	".woff2",
}

// placeholder values that look like credentials but aren't.
var secretAllowlist = regexp.MustCompile(`(?i)(example|sample|placeholder|changeme|your[_-]|xxx+|<[^>]+>|\$\{[^}]+\})`)

const (
	maxSecretScanFiles = 500
	maxSecretFileSize  = 512 * 1024
)

func (c *secretsSuspected) Run(ctx context.Context, rc *repo.Context) ([]checks.Finding, error) {
	// path -> pattern names hit there
	hits := make(map[string][]string)
	var order []string

	scanned := 0
	for _, rel := range rc.FS.Files() {
		if scanned >= maxSecretScanFiles {
			break
		}
		if skipForSecrets(rel) {
			continue
		}
		if st, ok := rc.FS.Stat(rel); !ok || st.Size > maxSecretFileSize {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, ok := rc.FS.ReadFile(rel)
		if !ok {
			continue
		}
		scanned++
		for _, p := range secretPatterns {
			m := p.re.FindString(content)
			if m == "" || secretAllowlist.MatchString(m) {
				continue
			}
			if _, seen := hits[rel]; !seen {
				order = append(order, rel)
			}
			hits[rel] = append(hits[rel], p.name)
		}
	}

	if len(hits) == 0 {
		return nil, nil
	}

	var findings []checks.Finding
	for _, rel := range order {
		f := checks.NewFinding(c,
			"Possible secret committed",
			fmt.Sprintf("%s matches credential patterns: %s", rel, strings.Join(hits[rel], ", ")))
		f.Evidence = []checks.Evidence{{
			Description: "File matches credential patterns (values withheld)",
			Files:       []string{rel},
			Details:     map[string]any{"patterns": hits[rel]},
		}}
		f.Recommendation = "Rotate the credential, remove it from history, and load secrets from the environment or a secret manager."
		f.Refs = []string{"https://docs.github.com/en/code-security/secret-scanning"}
		findings = append(findings, f)
	}
	return findings, nil
}

func skipForSecrets(rel string) bool {
	for _, s := range secretSkipSubstrings {
		if strings.Contains(rel, s) {
			return true
		}
	}
	return false
}
