// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

// Package exconfig loads ex command definitions from YAML configuration.
// User command files extend or shadow the builtin command set; a shadowing
// name simply surfaces as ambiguous at lookup time, matching the
// registry's permissive-at-write policy.
package exconfig

import (
	"errors"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"

	"github.com/exmode/exmode/internal/ex"
	"github.com/exmode/exmode/internal/script"
)

// Entry is one command definition. Exactly one of Action and Lua must be
// set: Action names a native selector, Lua holds a command body compiled by
// the script engine.
type Entry struct {
	Names      []string `koanf:"names"`
	Syntax     string   `koanf:"syntax"`
	Scope      string   `koanf:"scope"`
	Parameters []string `koanf:"parameters"`
	Doc        string   `koanf:"doc"`
	Action     string   `koanf:"action"`
	Lua        string   `koanf:"lua"`
}

// File is a parsed command definition file.
type File struct {
	Commands []Entry `koanf:"commands"`
}

// Load reads and parses a command definition file.
func Load(path string) (*File, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, oops.Code("CONFIG_LOAD").
			With("path", path).
			Wrap(err)
	}

	var f File
	if err := k.Unmarshal("", &f); err != nil {
		return nil, oops.Code("CONFIG_PARSE").
			With("path", path).
			Wrap(err)
	}
	return &f, nil
}

// Apply defines every entry of f into the registry. A bad entry does not
// abort the rest; the entry errors are joined and returned alongside the
// number of commands defined. engine may be nil when no entry uses Lua.
func Apply(reg *ex.Registry, f *File, engine *script.Engine) (int, error) {
	defined := 0
	var errs []error

	for _, entry := range f.Commands {
		if err := applyEntry(reg, entry, engine); err != nil {
			errs = append(errs, err)
			continue
		}
		defined++
	}

	if len(errs) > 0 {
		return defined, oops.Code("CONFIG_APPLY").
			With("failed", len(errs)).
			With("defined", defined).
			Wrap(errors.Join(errs...))
	}
	return defined, nil
}

func applyEntry(reg *ex.Registry, entry Entry, engine *script.Engine) error {
	name := "?"
	if len(entry.Names) > 0 {
		name = entry.Names[0]
	}

	var impl ex.Implementation
	switch {
	case entry.Action != "" && entry.Lua != "":
		return oops.Code(ex.CodeInvalidOperation).
			With("command", name).
			Errorf("command %s declares both an action and a lua body", name)
	case entry.Action != "":
		action, err := ex.NewAction(entry.Action)
		if err != nil {
			return oops.Code(ex.CodeInvalidOperation).With("command", name).Wrap(err)
		}
		impl = action
	case entry.Lua != "":
		if engine == nil {
			return oops.Code(ex.CodeInvalidOperation).
				With("command", name).
				Errorf("command %s needs a script engine for its lua body", name)
		}
		expr, err := engine.Compile(name, entry.Lua)
		if err != nil {
			return err
		}
		scr, err := ex.NewScript(expr)
		if err != nil {
			return oops.Code(ex.CodeInvalidOperation).With("command", name).Wrap(err)
		}
		impl = scr
	default:
		return oops.Code(ex.CodeInvalidOperation).
			With("command", name).
			Errorf("command %s declares neither an action nor a lua body", name)
	}

	opts := []ex.MappingOption{}
	if entry.Scope != "" {
		opts = append(opts, ex.WithScope(entry.Scope))
	}
	if len(entry.Parameters) > 0 {
		opts = append(opts, ex.WithParameterNames(entry.Parameters...))
	}
	if entry.Doc != "" {
		opts = append(opts, ex.WithDocumentation(entry.Doc))
	}

	if _, err := reg.Define(entry.Names, entry.Syntax, impl, opts...); err != nil {
		return err
	}
	return nil
}
