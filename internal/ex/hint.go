// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"strings"

	"github.com/samber/oops"
)

// SyntaxHintFor renders the syntax hint for a mapping registered in this
// registry: the shortest abbreviation that still resolves uniquely, with
// the optional tail bracketed, decorated with the mapping's argument
// shapes. For a "write" command abbreviatable to "w" the result looks like
// "[range]w[rite][!] [file]". Returns UnknownMapping if m is not in the
// registry.
func (r *Registry) SyntaxHintFor(m *Mapping) (string, error) {
	return r.SyntaxHintForPrefix(m, "")
}

// SyntaxHintForPrefix is SyntaxHintFor with an explicit prefix choosing
// which of the mapping's names to render. Mappings with aliases that are
// not prefixes of each other (tabedit and tabnew, say) have one hint per
// alias; the prefix picks the alias. An empty prefix renders the canonical
// name.
func (r *Registry) SyntaxHintForPrefix(m *Mapping, prefix string) (string, error) {
	if m == nil {
		return "", oops.Code(CodeInvalidOperation).Errorf("mapping cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.containsLocked(m) {
		return "", ErrUnknownMapping(m.Name())
	}

	name := m.Name()
	if prefix != "" {
		name = ""
		for _, n := range m.names {
			if strings.HasPrefix(n, prefix) {
				name = n
				break
			}
		}
		if name == "" {
			return "", oops.Code(CodeInvalidOperation).
				With("command", m.Name()).
				With("prefix", prefix).
				Errorf("prefix %s does not match any name of %s", prefix, m.Name())
		}
	}

	recordHintSynthesis()
	return m.SyntaxHint(r.commandHintLocked(m, name)), nil
}

// commandHintLocked computes the optional-tail notation for one of m's
// names: the minimal leading prefix that resolves uniquely to m against the
// whole registry (scope-unfiltered), with the remainder bracketed. When no
// shorter prefix is unambiguous the full name is rendered with no bracket.
func (r *Registry) commandHintLocked(m *Mapping, name string) string {
	for l := 1; l <= len(name); l++ {
		resolved, err := r.lookupLocked(name[:l], "", false)
		if err != nil || resolved != m {
			continue
		}
		if l == len(name) {
			break
		}
		return name[:l] + "[" + name[l:] + "]"
	}
	// Every abbreviation collides with another command (or the name itself
	// is shadowed by an earlier exact duplicate).
	return name
}
