// Package policy loads the static insurer → plan → coverage-rules mapping.
//
// The store is constructed once by the caller and treated as read-only;
// there is no process-wide cache. Lookups are case-sensitive exact matches,
// and an unknown insurer or plan is a caller error, not an engine concern.
package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/gyeh/claimsight/internal/model"
)

// Store holds all known policies keyed by insurer then plan.
type Store struct {
	policies map[string]map[string]model.Policy
}

// Load reads a policy JSON file of the shape {insurer: {plan: policy}}.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	var policies map[string]map[string]model.Policy
	if err := json.Unmarshal(data, &policies); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}
	return &Store{policies: policies}, nil
}

// Insurers returns all insurer names, sorted.
func (s *Store) Insurers() []string {
	names := make([]string, 0, len(s.policies))
	for name := range s.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plans returns the plan names of one insurer, sorted. The empty slice means
// the insurer is unknown.
func (s *Store) Plans(insurer string) []string {
	plans, ok := s.policies[insurer]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(plans))
	for name := range plans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup fetches one policy by exact insurer and plan name.
func (s *Store) Lookup(insurer, plan string) (model.Policy, error) {
	plans, ok := s.policies[insurer]
	if !ok {
		return model.Policy{}, fmt.Errorf("unknown insurer %q", insurer)
	}
	p, ok := plans[plan]
	if !ok {
		return model.Policy{}, fmt.Errorf("unknown plan %q for insurer %q", plan, insurer)
	}
	return p, nil
}
