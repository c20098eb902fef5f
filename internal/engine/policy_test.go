package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repohealth/internal/checks"
	"repohealth/internal/config"
)

func reportWith(score int, findings ...checks.Finding) *Report {
	return &Report{Score: score, Findings: findings}
}

func policy(minScore int, failOn checks.Severity) config.Policy {
	return config.Policy{MinScore: minScore, FailOn: failOn}
}

func TestEvaluatePolicyCompliantWithoutGates(t *testing.T) {
	rep := reportWith(12,
		finding("security.secrets_suspected", checks.CategorySecurity, checks.SeverityCritical, 10))
	out := EvaluatePolicy(rep, policy(config.MinScoreUnset, ""))

	assert.Equal(t, OutcomeCompliant, out.Status)
	assert.Empty(t, out.Reasons)
	assert.Equal(t, ExitCompliant, out.ExitCode())
}

func TestEvaluatePolicyScoreGate(t *testing.T) {
	rep := reportWith(74)
	out := EvaluatePolicy(rep, policy(75, ""))

	assert.Equal(t, OutcomePolicyViolated, out.Status)
	require.Len(t, out.Reasons, 1)
	assert.Equal(t, "score 74 < 75", out.Reasons[0])
	assert.Equal(t, ExitPolicyViolated, out.ExitCode())
}

func TestEvaluatePolicyScoreAtThresholdPasses(t *testing.T) {
	out := EvaluatePolicy(reportWith(75), policy(75, ""))
	assert.Equal(t, OutcomeCompliant, out.Status)
}

func TestEvaluatePolicySeverityGate(t *testing.T) {
	rep := reportWith(90,
		finding("ci.config_present", checks.CategoryCI, checks.SeverityHigh, 10),
		finding("docs.license_present", checks.CategoryDocs, checks.SeverityMedium, 4),
		finding("hygiene.editorconfig_present", checks.CategoryHygiene, checks.SeverityInfo, 2),
	)
	out := EvaluatePolicy(rep, policy(config.MinScoreUnset, checks.SeverityMedium))

	assert.Equal(t, OutcomePolicyViolated, out.Status)
	require.Len(t, out.Reasons, 1)
	assert.Equal(t, "findings at or above medium severity: ci.config_present, docs.license_present", out.Reasons[0])
}

func TestEvaluatePolicySeverityGateDeduplicatesCheckIDs(t *testing.T) {
	rep := reportWith(80,
		finding("deps.lockfile_present", checks.CategoryDeps, checks.SeverityMedium, 6),
		finding("deps.lockfile_present", checks.CategoryDeps, checks.SeverityMedium, 6),
	)
	out := EvaluatePolicy(rep, policy(config.MinScoreUnset, checks.SeverityMedium))

	require.Len(t, out.Reasons, 1)
	assert.Equal(t, "findings at or above medium severity: deps.lockfile_present", out.Reasons[0])
}

func TestEvaluatePolicyBothGatesIndependent(t *testing.T) {
	rep := reportWith(40,
		finding("security.secrets_suspected", checks.CategorySecurity, checks.SeverityCritical, 10))
	out := EvaluatePolicy(rep, policy(80, checks.SeverityHigh))

	assert.Equal(t, OutcomePolicyViolated, out.Status)
	require.Len(t, out.Reasons, 2, "both gates report even when the first already failed")
	assert.Equal(t, "score 40 < 80", out.Reasons[0])
	assert.Equal(t, "findings at or above high severity: security.secrets_suspected", out.Reasons[1])
}

func TestEvaluatePolicySeverityBelowThresholdPasses(t *testing.T) {
	rep := reportWith(95,
		finding("hygiene.editorconfig_present", checks.CategoryHygiene, checks.SeverityInfo, 2))
	out := EvaluatePolicy(rep, policy(config.MinScoreUnset, checks.SeverityHigh))
	assert.Equal(t, OutcomeCompliant, out.Status)
}

func TestAnalysisErrorOutcome(t *testing.T) {
	out := AnalysisErrorOutcome(errors.New("path not found: /nope"))
	assert.Equal(t, OutcomeAnalysisError, out.Status)
	assert.Equal(t, "path not found: /nope", out.Cause)
	assert.Equal(t, ExitAnalysisError, out.ExitCode())
}

func TestOutcomeExitCodeUnknownStatusIsInternal(t *testing.T) {
	out := Outcome{Status: OutcomeStatus("weird")}
	assert.Equal(t, ExitInternalError, out.ExitCode())
}
