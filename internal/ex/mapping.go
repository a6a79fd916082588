// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

// Package ex provides the ex-style command registry: named, abbreviatable
// commands with aliases, scope-sensitive lookup, and syntax-hint synthesis.
package ex

import (
	"slices"
	"strings"

	"github.com/samber/oops"
)

// Mapping is the definition of one ex command: its canonical name and
// aliases, syntax flags, scope selector, and implementation. Everything
// except the alias list is immutable after construction. Alias mutation is
// not synchronized; serialize AddAlias and RemoveAlias externally against
// concurrent lookups, the same single-writer discipline the registry
// assumes.
type Mapping struct {
	names          []string
	scopeSelector  string
	syntax         Syntax
	parameterNames []string
	documentation  string
	impl           Implementation
}

// MappingOption configures a Mapping during construction.
type MappingOption func(*Mapping)

// WithScope restricts the mapping to scopes matched by the given selector.
// An empty selector (the default) applies in all scopes.
func WithScope(selector string) MappingOption {
	return func(m *Mapping) {
		m.scopeSelector = selector
	}
}

// WithParameterNames sets the display names for the mapping's argument
// slots, consumed in the order the slots appear in the rendered hint:
// register, then +command, then extra argument.
func WithParameterNames(names ...string) MappingOption {
	return func(m *Mapping) {
		m.parameterNames = slices.Clone(names)
	}
}

// WithDocumentation sets the free-text description of the command.
func WithDocumentation(doc string) MappingOption {
	return func(m *Mapping) {
		m.documentation = doc
	}
}

// NewMapping creates a command mapping. The first name is canonical, the
// rest are aliases. impl must be a value built by NewAction or NewScript.
func NewMapping(names []string, syntax string, impl Implementation, opts ...MappingOption) (*Mapping, error) {
	if len(names) == 0 {
		return nil, oops.Code(CodeInvalidOperation).
			Errorf("mapping needs at least one name")
	}
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return nil, err
		}
	}
	if impl == nil {
		return nil, oops.Code(CodeInvalidOperation).
			With("command", names[0]).
			Errorf("mapping %s has no implementation", names[0])
	}
	syn := Syntax(syntax)
	if err := syn.Validate(); err != nil {
		return nil, oops.Code(CodeInvalidOperation).With("command", names[0]).Wrap(err)
	}

	m := &Mapping{
		names:  slices.Clone(names),
		syntax: syn,
		impl:   impl,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Name returns the canonical (primary) name.
func (m *Mapping) Name() string { return m.names[0] }

// Names returns all names and aliases; index 0 is canonical.
func (m *Mapping) Names() []string { return slices.Clone(m.names) }

// Syntax returns the syntax-flag string.
func (m *Mapping) Syntax() Syntax { return m.syntax }

// ScopeSelector returns the scope selector, or "" when the mapping applies
// in all scopes.
func (m *Mapping) ScopeSelector() string { return m.scopeSelector }

// ParameterNames returns the display names for the argument slots.
func (m *Mapping) ParameterNames() []string { return slices.Clone(m.parameterNames) }

// Documentation returns the command's description.
func (m *Mapping) Documentation() string { return m.documentation }

// Implementation returns the command body.
func (m *Mapping) Implementation() Implementation { return m.impl }

// AddAlias appends an alias. Adding a name the mapping already has is a
// no-op; an invalid name is rejected.
func (m *Mapping) AddAlias(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if slices.Contains(m.names, name) {
		return nil
	}
	m.names = append(m.names, name)
	return nil
}

// RemoveAlias removes the first occurrence of name from the alias list.
// The canonical name cannot be removed. Removing a name the mapping does
// not have is a no-op.
func (m *Mapping) RemoveAlias(name string) error {
	if name == m.names[0] {
		return oops.Code(CodeInvalidOperation).
			With("command", name).
			Errorf("cannot remove the canonical name %s", name)
	}
	if i := slices.Index(m.names, name); i > 0 {
		m.names = slices.Delete(m.names, i, i+1)
	}
	return nil
}

// hasPrefixedName reports whether any of the mapping's names starts with
// token. An exact name match also counts.
func (m *Mapping) hasPrefixedName(token string) bool {
	for _, name := range m.names {
		if strings.HasPrefix(name, token) {
			return true
		}
	}
	return false
}

// hasExactName reports whether token equals one of the mapping's names.
func (m *Mapping) hasExactName(token string) bool {
	return slices.Contains(m.names, token)
}

// Default slot display names, overridable via WithParameterNames.
const (
	defaultRegisterName = "register"
	defaultCommandName  = "command"
	defaultArgumentName = "argument"
)

// SyntaxHint combines a command hint (for example "w[rite]", computed by
// the registry from the full mapping list) with bracket notation for the
// argument shapes this mapping accepts, rendering something like
// "[range]w[rite][!] [file]".
func (m *Mapping) SyntaxHint(commandHint string) string {
	var b strings.Builder

	if m.syntax.Allows(FlagRange) {
		b.WriteString("[range]")
	}
	b.WriteString(commandHint)
	if m.syntax.Allows(FlagBang) {
		b.WriteString("[!]")
	}

	// Remaining parameterNames rename the slots below in order of
	// appearance.
	params := m.parameterNames
	next := func(fallback string) string {
		if len(params) > 0 {
			name := params[0]
			params = params[1:]
			return name
		}
		return fallback
	}

	if m.syntax.Allows(FlagCount) {
		b.WriteString(" [count]")
	}
	if m.syntax.Allows(FlagRegister) {
		b.WriteString(" [" + next(defaultRegisterName) + "]")
	}
	switch {
	case m.syntax.Allows(FlagLineRequired):
		b.WriteString(" line")
	case m.syntax.Allows(FlagLine):
		b.WriteString(" [line]")
	}
	if m.syntax.Allows(FlagSubstitute) {
		b.WriteString(" /pattern/replacement/[flags]")
	}
	if m.syntax.Allows(FlagPattern) {
		b.WriteString(" /pattern/[flags]")
	}
	if m.syntax.Allows(FlagPlusCommand) {
		b.WriteString(" [+" + next(defaultCommandName) + "]")
	}
	switch {
	case m.syntax.Allows(FlagExtraRequired):
		b.WriteString(" " + next(defaultArgumentName))
	case m.syntax.Allows(FlagExtra), m.syntax.Allows(FlagOneExtra):
		b.WriteString(" [" + next(defaultArgumentName) + "]")
	}

	return b.String()
}
