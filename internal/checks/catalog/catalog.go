// Package catalog holds the built-in health checks. Each check lives in
// its own file and registers itself at init time; Registry assembles them
// into the immutable table handed to the runner.
package catalog

import (
	"repohealth/internal/checks"
)

var all []checks.Check

func register(c checks.Check) {
	all = append(all, c)
}

// Registry builds the registry of built-in checks. It panics on duplicate
// check ids, which is a programming error caught at startup.
func Registry() *checks.Registry {
	reg := checks.NewRegistry()
	for _, c := range all {
		reg.MustRegister(c)
	}
	return reg
}

// meta carries a check's descriptor fields: stable id, category, default
// severity, default weight (penalty), and the human explanation shown by
// "checks show". Defined once at registration; never mutated.
type meta struct {
	id          string
	title       string
	category    checks.Category
	severity    checks.Severity
	weight      int
	description string
}

func (m meta) ID() string                { return m.id }
func (m meta) Title() string             { return m.title }
func (m meta) Category() checks.Category { return m.category }
func (m meta) Severity() checks.Severity { return m.severity }
func (m meta) Weight() int               { return m.weight }
func (m meta) Description() string       { return m.description }
