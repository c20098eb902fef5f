package engine

import (
	"fmt"
	"sort"
	"strings"

	"repohealth/internal/config"
)

// OutcomeStatus is the ternary result of policy evaluation.
type OutcomeStatus string

const (
	OutcomeCompliant      OutcomeStatus = "compliant"
	OutcomePolicyViolated OutcomeStatus = "policy_violated"
	OutcomeAnalysisError  OutcomeStatus = "analysis_error"
)

// Exit code contract:
// 0 = compliant
// 1 = policy violated
// 2 = analysis error (scan could not produce a report)
// 3 = internal/unexpected error
const (
	ExitCompliant      = 0
	ExitPolicyViolated = 1
	ExitAnalysisError  = 2
	ExitInternalError  = 3
)

// Outcome is the terminal result of a scan. It maps 1:1 to an exit status.
type Outcome struct {
	Status  OutcomeStatus `json:"status"`
	Reasons []string      `json:"reasons,omitempty"`
	Cause   string        `json:"cause,omitempty"`
}

func (o Outcome) ExitCode() int {
	switch o.Status {
	case OutcomeCompliant:
		return ExitCompliant
	case OutcomePolicyViolated:
		return ExitPolicyViolated
	case OutcomeAnalysisError:
		return ExitAnalysisError
	default:
		return ExitInternalError
	}
}

// AnalysisErrorOutcome reports that the scan itself could not produce a
// report (bad path, cancellation, malformed configuration).
func AnalysisErrorOutcome(err error) Outcome {
	o := Outcome{Status: OutcomeAnalysisError}
	if err != nil {
		o.Cause = err.Error()
	}
	return o
}

// EvaluatePolicy compares a finished report against the policy gates.
//
// The min-score and fail-on gates are independent; both are always
// evaluated so the caller sees the complete violation picture in one pass,
// never a subset.
func EvaluatePolicy(rep *Report, pol config.Policy) Outcome {
	var reasons []string

	if pol.MinScore != config.MinScoreUnset && rep.Score < pol.MinScore {
		reasons = append(reasons, fmt.Sprintf("score %d < %d", rep.Score, pol.MinScore))
	}

	if pol.FailOn != "" {
		offending := make(map[string]struct{})
		for _, f := range rep.Findings {
			if f.Severity.AtLeast(pol.FailOn) {
				offending[f.CheckID] = struct{}{}
			}
		}
		if len(offending) > 0 {
			ids := make([]string, 0, len(offending))
			for id := range offending {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			reasons = append(reasons, fmt.Sprintf("findings at or above %s severity: %s", pol.FailOn, strings.Join(ids, ", ")))
		}
	}

	if len(reasons) > 0 {
		return Outcome{Status: OutcomePolicyViolated, Reasons: reasons}
	}
	return Outcome{Status: OutcomeCompliant}
}
