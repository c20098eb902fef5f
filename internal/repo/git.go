package repo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const gitCommandTimeout = 5 * time.Second

// GitInfo holds metadata extracted from the local git repository. All
// fields are read via the git binary against local state; no remote is
// contacted.
type GitInfo struct {
	IsRepo  bool
	Branch  string
	HeadSHA string // short (12 chars)
	Tags    []string
}

// ReadGitInfo extracts git metadata for root. A missing .git directory or
// missing git binary yields IsRepo=false / partial info; git problems never
// fail a scan.
func ReadGitInfo(ctx context.Context, root string) GitInfo {
	var info GitInfo

	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		return info
	}
	info.IsRepo = true

	if out, ok := runGit(ctx, root, "rev-parse", "--abbrev-ref", "HEAD"); ok {
		info.Branch = out
	}
	if out, ok := runGit(ctx, root, "rev-parse", "HEAD"); ok {
		if len(out) > 12 {
			out = out[:12]
		}
		info.HeadSHA = out
	}
	if out, ok := runGit(ctx, root, "tag", "--list"); ok {
		for _, line := range strings.Split(out, "\n") {
			if t := strings.TrimSpace(line); t != "" {
				info.Tags = append(info.Tags, t)
			}
		}
	}

	return info
}

func runGit(ctx context.Context, root string, args ...string) (string, bool) {
	cmdCtx, cancel := context.WithTimeout(ctx, gitCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "git", args...)
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}
