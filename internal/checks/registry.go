package checks

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is an immutable table of checks keyed by id. It is constructed
// once at startup and passed explicitly to the runner; checks never consult
// a process-global table at scan time.
type Registry struct {
	byID map[string]Check
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Check)}
}

// MustRegister adds a check to the registry. A duplicate id is a
// programming error and panics at startup rather than surfacing as a
// runtime finding.
func (r *Registry) MustRegister(c Check) {
	id := c.ID()
	if id == "" {
		panic("checks: cannot register a check with an empty id")
	}
	if _, exists := r.byID[id]; exists {
		panic(fmt.Sprintf("checks: %s already registered", id))
	}
	r.byID[id] = c
}

// List returns all registered checks sorted by id.
func (r *Registry) List() []Check {
	out := make([]Check, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (r *Registry) Len() int {
	return len(r.byID)
}

// Get looks up a check by id.
func (r *Registry) Get(id string) (Check, error) {
	c, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("check not found: %s", id)
	}
	return c, nil
}

// Select applies inclusion and exclusion filters and returns the remaining
// checks sorted by id.
//
// Precedence: if only is non-empty, the set is restricted to those ids
// first; skip then subtracts from whatever remains. Unknown ids in either
// list are rejected so typos fail loudly instead of silently scanning the
// wrong subset.
func (r *Registry) Select(only, skip []string) ([]Check, error) {
	for _, id := range only {
		if _, err := r.Get(id); err != nil {
			return nil, fmt.Errorf("--only: %w", err)
		}
	}
	for _, id := range skip {
		if _, err := r.Get(id); err != nil {
			return nil, fmt.Errorf("--skip: %w", err)
		}
	}

	onlySet := make(map[string]struct{}, len(only))
	for _, id := range only {
		onlySet[strings.TrimSpace(id)] = struct{}{}
	}
	skipSet := make(map[string]struct{}, len(skip))
	for _, id := range skip {
		skipSet[strings.TrimSpace(id)] = struct{}{}
	}

	var selected []Check
	for _, c := range r.List() {
		if len(onlySet) > 0 {
			if _, ok := onlySet[c.ID()]; !ok {
				continue
			}
		}
		if _, ok := skipSet[c.ID()]; ok {
			continue
		}
		selected = append(selected, c)
	}
	return selected, nil
}
