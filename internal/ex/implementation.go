// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"context"

	"github.com/samber/oops"
)

// Invocation is the argument bundle handed to an implementation. It is
// constructed by the argument parser (an external collaborator); this
// package only carries it through to Invoke.
type Invocation struct {
	Token   string   // command token as typed, possibly abbreviated
	Mapping *Mapping // resolved mapping
	Args    string   // unparsed argument string
	Bang    bool     // "!" followed the command name
	Scope   string   // scope the command line was evaluated in

	// Performer dispatches native action selectors. Set by the evaluator
	// (or the embedding editor) before Invoke; script implementations
	// ignore it.
	Performer Performer
}

// Performer dispatches a native action selector against the host editor.
type Performer interface {
	Perform(ctx context.Context, selector string, inv *Invocation) error
}

// Callable is a user-supplied command body, typically a compiled script
// function. The argument map is the flattened invocation.
type Callable interface {
	Call(ctx context.Context, arg map[string]any) error
}

// Implementation is the command body: exactly one of the two variants,
// a native action selector or a user-supplied callable.
type Implementation interface {
	// Invoke runs the command body with the given invocation.
	Invoke(ctx context.Context, inv *Invocation) error
	// Kind returns "action" or "script".
	Kind() string

	sealed()
}

// Action is the native-callback variant: a selector identifier dispatched
// through the invocation's Performer.
type Action struct {
	selector string
}

// NewAction creates a native action implementation.
func NewAction(selector string) (*Action, error) {
	if selector == "" {
		return nil, oops.Code(CodeInvalidOperation).
			Errorf("action selector cannot be empty")
	}
	return &Action{selector: selector}, nil
}

// Selector returns the native action identifier.
func (a *Action) Selector() string { return a.selector }

// Kind returns "action".
func (a *Action) Kind() string { return "action" }

func (a *Action) sealed() {}

// Invoke dispatches the selector through inv.Performer.
func (a *Action) Invoke(ctx context.Context, inv *Invocation) error {
	if inv == nil || inv.Performer == nil {
		return oops.Code(CodeInvalidOperation).
			With("selector", a.selector).
			Errorf("no performer bound for action %s", a.selector)
	}
	return inv.Performer.Perform(ctx, a.selector, inv)
}

// Script is the user-callable variant: a script function invoked with the
// flattened invocation as its single argument.
type Script struct {
	fn Callable
}

// NewScript creates a script implementation from a compiled callable.
func NewScript(fn Callable) (*Script, error) {
	if fn == nil {
		return nil, oops.Code(CodeInvalidOperation).
			Errorf("script callable cannot be nil")
	}
	return &Script{fn: fn}, nil
}

// Kind returns "script".
func (s *Script) Kind() string { return "script" }

func (s *Script) sealed() {}

// Invoke calls the script function with the flattened invocation.
func (s *Script) Invoke(ctx context.Context, inv *Invocation) error {
	arg := map[string]any{}
	if inv != nil {
		arg["token"] = inv.Token
		arg["args"] = inv.Args
		arg["bang"] = inv.Bang
		arg["scope"] = inv.Scope
		if inv.Mapping != nil {
			arg["name"] = inv.Mapping.Name()
		}
	}
	return s.fn.Call(ctx, arg)
}
