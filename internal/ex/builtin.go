// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"sync"

	"github.com/samber/oops"

	"github.com/exmode/exmode/internal/scope"
)

// builtinDef describes one builtin ex command. Selectors follow the
// ex_<canonical> convention and are dispatched through the embedding
// editor's Performer.
type builtinDef struct {
	names    []string
	syntax   string
	selector string
	scope    string
	params   []string
	doc      string
}

var builtinDefs = []builtinDef{
	{names: []string{"write", "w"}, syntax: "r%!1exm", params: []string{"file"},
		doc: "Write the buffer to a file."},
	{names: []string{"wq"}, syntax: "r%!1ex", params: []string{"file"},
		doc: "Write the buffer, then close it."},
	{names: []string{"xit", "x"}, syntax: "r%!1ex", params: []string{"file"},
		doc: "Write the buffer if modified, then close it."},
	{names: []string{"quit", "q"}, syntax: "!",
		doc: "Close the current view."},
	{names: []string{"quitall", "qall", "qa"}, syntax: "!",
		doc: "Close all views."},
	{names: []string{"edit", "e"}, syntax: "!+1ex", params: []string{"file"},
		doc: "Edit a file in the current view."},
	{names: []string{"new"}, syntax: "1ex", params: []string{"file"},
		doc: "Open a file in a new horizontal split."},
	{names: []string{"vnew"}, syntax: "1ex", params: []string{"file"},
		doc: "Open a file in a new vertical split."},
	{names: []string{"tabedit", "tabnew"}, syntax: "1ex", params: []string{"file"},
		doc: "Open a file in a new tab."},
	{names: []string{"tabclose"}, syntax: "!",
		doc: "Close the current tab."},
	{names: []string{"buffer", "b"}, syntax: "!1e", params: []string{"buffer"},
		doc: "Switch to an open buffer."},
	{names: []string{"bnext", "bn"}, syntax: "!c",
		doc: "Switch to the next buffer."},
	{names: []string{"bprevious", "bp"}, syntax: "!c",
		doc: "Switch to the previous buffer."},
	{names: []string{"bdelete", "bd"}, syntax: "!1e", params: []string{"buffer"},
		doc: "Close a buffer."},
	{names: []string{"read", "r"}, syntax: "l1exm", params: []string{"file"},
		doc: "Insert the contents of a file below the given line."},
	{names: []string{"set", "se"}, syntax: "e", params: []string{"option"},
		doc: "Set an editor option."},
	{names: []string{"substitute", "s"}, syntax: "r~cm",
		doc: "Replace pattern matches within the range."},
	{names: []string{"global", "g"}, syntax: "r%/e|m", params: []string{"command"},
		doc: "Run a command on every line matching a pattern."},
	{names: []string{"vglobal", "v"}, syntax: "r%/e|m", params: []string{"command"},
		doc: "Run a command on every line not matching a pattern."},
	{names: []string{"number", "nu"}, syntax: "rc",
		doc: "Print lines with line numbers."},
	{names: []string{"copy", "co", "t"}, syntax: "rLm",
		doc: "Copy the range below the given line."},
	{names: []string{"move", "m"}, syntax: "rLm",
		doc: "Move the range below the given line."},
	{names: []string{"delete", "d"}, syntax: "rRcm",
		doc: "Delete the range into a register."},
	{names: []string{"yank", "y"}, syntax: "rRc",
		doc: "Yank the range into a register."},
	{names: []string{"put", "pu"}, syntax: "!lRm",
		doc: "Put register contents below the given line."},
	{names: []string{"normal", "norm"}, syntax: "r!E|m", params: []string{"keys"},
		doc: "Replay normal-mode keys on each line of the range."},
	{names: []string{"map"}, syntax: "e|",
		doc: "Define a key mapping."},
	{names: []string{"unmap"}, syntax: "E1", params: []string{"keys"},
		doc: "Remove a key mapping."},
	{names: []string{"help", "h"}, syntax: "1e", params: []string{"subject"},
		doc: "Show help."},
	{names: []string{"eval"}, syntax: "E|", scope: "source", params: []string{"expression"},
		doc: "Evaluate an expression (source buffers only)."},
}

// RegisterBuiltins defines the builtin command set into the given registry.
func RegisterBuiltins(r *Registry) error {
	for _, def := range builtinDefs {
		impl, err := NewAction("ex_" + def.names[0])
		if err != nil {
			return err
		}
		opts := []MappingOption{WithDocumentation(def.doc)}
		if def.scope != "" {
			opts = append(opts, WithScope(def.scope))
		}
		if len(def.params) > 0 {
			opts = append(opts, WithParameterNames(def.params...))
		}
		if _, err := r.Define(def.names, def.syntax, impl, opts...); err != nil {
			return oops.Code(CodeInvalidOperation).With("command", def.names[0]).Wrap(err)
		}
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, built once on first use with
// the builtin command set and the standard scope matcher. Callers wanting
// isolation construct their own registry with NewRegistry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(WithScopeMatcher(scope.NewMatcher()))
		if err := RegisterBuiltins(defaultRegistry); err != nil {
			// The builtin table is hardcoded; a failure here is a code bug
			// that should fail fast.
			panic("invalid builtin command definition: " + err.Error())
		}
	})
	return defaultRegistry
}
