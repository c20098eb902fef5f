package engine

import (
	"repohealth/internal/checks"
)

// CheckStatus describes what happened to one registered check during a scan.
type CheckStatus string

const (
	CheckStatusRan     CheckStatus = "ran"
	CheckStatusSkipped CheckStatus = "skipped"
	// CheckStatusFailed means the check's logic failed internally; the scan
	// continued and a synthetic finding was recorded for it.
	CheckStatusFailed CheckStatus = "failed"
)

// CheckExecution records per-check execution metadata so every outcome is
// explainable from the report alone: which checks ran, which were skipped,
// and which failed internally.
type CheckExecution struct {
	CheckID    string      `json:"check_id"`
	Status     CheckStatus `json:"status"`
	DurationMS int64       `json:"duration_ms"`
	Findings   int         `json:"findings"`
	// Error is a non-sensitive error summary for failed checks.
	Error string `json:"error,omitempty"`
}

// Meta describes the report generation itself.
type Meta struct {
	ToolVersion string `json:"tool_version"`
	Timestamp   string `json:"timestamp"`
	DurationMS  int64  `json:"duration_ms"`
}

// RepoInfo describes the scanned repository.
type RepoInfo struct {
	Path    string `json:"path"`
	IsRepo  bool   `json:"is_git_repo"`
	Branch  string `json:"branch,omitempty"`
	HeadSHA string `json:"head_sha,omitempty"`
}

// Metrics holds additional facts about the repository.
type Metrics struct {
	FilesCount      int      `json:"files_count"`
	Languages       []string `json:"languages_detected"`
	CIProviders     []string `json:"ci_providers_found"`
	PackageManagers []string `json:"package_managers_found"`
}

// Report is the final artifact of a scan. It is produced once and never
// mutated; renderers and the policy evaluator consume it read-only.
type Report struct {
	Meta  Meta     `json:"meta"`
	Repo  RepoInfo `json:"repo"`
	Score int      `json:"score"`
	Grade string   `json:"grade"`
	// Categories maps each category to the total penalty deducted for it.
	// Categories with no deductions are present with subtotal 0 so the
	// report shape is stable.
	Categories     map[checks.Category]int `json:"categories"`
	SeverityCounts map[checks.Severity]int `json:"severity_counts"`
	Findings       []checks.Finding        `json:"findings"`
	Checks         []CheckExecution        `json:"checks"`
	Metrics        Metrics                 `json:"metrics"`
}
