// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"slices"
	"sync"

	"github.com/samber/oops"
)

// ScopeMatcher decides whether a scope selector applies to a scope. Scope
// matching semantics live in a collaborator (internal/scope provides the
// default); the registry only needs the boolean.
type ScopeMatcher interface {
	Matches(selector, scope string) bool
}

// Registry is an ordered collection of command mappings. Insertion order is
// preserved and significant: ambiguity candidates are reported in definition
// order and the first exact name match wins. Mappings are appended, never
// removed. Reads and writes are synchronized; the expected shape is
// configure once at startup, then read-heavily.
type Registry struct {
	mu       sync.RWMutex
	mappings []*Mapping
	matcher  ScopeMatcher
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry)

// WithScopeMatcher sets the scope-selector matcher used by scoped lookups.
// Without one, mappings carrying a scope selector never match a scoped
// lookup (they still match unscoped lookups).
func WithScopeMatcher(m ScopeMatcher) RegistryOption {
	return func(r *Registry) {
		r.matcher = m
	}
}

// NewRegistry creates an empty command registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Define registers a command. nameOrNames is a single name (string) or an
// ordered name list ([]string) whose first entry is the canonical name.
// Cross-mapping duplicate names are not rejected here; they surface as
// Ambiguous at lookup time.
func (r *Registry) Define(nameOrNames any, syntax string, impl Implementation, opts ...MappingOption) (*Mapping, error) {
	var names []string
	switch v := nameOrNames.(type) {
	case string:
		names = []string{v}
	case []string:
		names = v
	default:
		return nil, oops.Code(CodeInvalidOperation).
			With("type", nameOrNames).
			Errorf("command name must be a string or a []string")
	}

	m, err := NewMapping(names, syntax, impl, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappings = append(r.mappings, m)
	return m, nil
}

// Add appends an already-constructed mapping.
func (r *Registry) Add(m *Mapping) error {
	if m == nil {
		return oops.Code(CodeInvalidOperation).Errorf("mapping cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappings = append(r.mappings, m)
	return nil
}

// Mappings returns a snapshot of all registered mappings in definition
// order.
func (r *Registry) Mappings() []*Mapping {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.mappings)
}

// Lookup resolves a possibly-abbreviated command token against all
// mappings. An exact name match always wins; otherwise the token must be a
// prefix of exactly one mapping's names. Returns a NotFound or Ambiguous
// error on failure; Candidates extracts the contenders from the latter.
func (r *Registry) Lookup(token string) (*Mapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupLocked(token, "", false)
}

// LookupInScope is Lookup restricted to mappings whose scope selector is
// empty or matches scope.
func (r *Registry) LookupInScope(token, scope string) (*Mapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupLocked(token, scope, true)
}

func (r *Registry) lookupLocked(token, scope string, scoped bool) (*Mapping, error) {
	var matches []*Mapping
	for _, m := range r.mappings {
		if scoped && !r.appliesLocked(m, scope) {
			continue
		}
		if m.hasExactName(token) {
			return m, nil
		}
		if m.hasPrefixedName(token) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return nil, ErrNotFound(token)
	case 1:
		return matches[0], nil
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.Name()
		}
		return nil, ErrAmbiguous(token, candidates)
	}
}

// appliesLocked reports whether a mapping applies in the given scope.
func (r *Registry) appliesLocked(m *Mapping, scope string) bool {
	if m.scopeSelector == "" {
		return true
	}
	if r.matcher == nil {
		return false
	}
	return r.matcher.Matches(m.scopeSelector, scope)
}

// containsLocked reports whether m is in the registry's backing store.
func (r *Registry) containsLocked(m *Mapping) bool {
	return slices.Contains(r.mappings, m)
}
