// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

// Package script provides a sandboxed Lua runtime for user-defined ex
// commands. A command body is compiled once into an Expr and invoked with
// the flattened invocation as a table argument.
package script

import (
	"context"
	"sync"

	"github.com/samber/oops"
	lua "github.com/yuin/gopher-lua"
)

// safeLibrary is a Lua library that is safe to load in a sandboxed state.
type safeLibrary struct {
	name string
	fn   lua.LGFunction
}

// defaultSafeLibraries returns the libraries a command body may use.
// Safe: base, table, string, math.
// Blocked: os, io, debug, package.
func defaultSafeLibraries() []safeLibrary {
	return []safeLibrary{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
}

// unsafeBaseFunctions lists base library functions blocked because they
// reach the filesystem.
var unsafeBaseFunctions = []string{"dofile", "loadfile", "loadstring", "load"}

// Engine compiles command bodies into sandboxed Lua expressions.
type Engine struct {
	libraries []safeLibrary
}

// NewEngine creates a script engine with the default sandbox.
func NewEngine() *Engine {
	return &Engine{
		libraries: defaultSafeLibraries(),
	}
}

// newState creates a fresh Lua state with only safe libraries loaded.
func (e *Engine) newState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	for _, lib := range e.libraries {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, oops.Code("SCRIPT_INIT").
				With("library", lib.name).
				Wrap(err)
		}
	}

	for _, fn := range unsafeBaseFunctions {
		L.SetGlobal(fn, lua.LNil)
	}

	return L, nil
}

// Compile compiles a Lua source chunk into a callable expression. The
// chunk body is the command implementation; it receives the invocation
// table as its vararg ("..."). name labels the chunk in error messages.
func (e *Engine) Compile(name, source string) (*Expr, error) {
	L, err := e.newState()
	if err != nil {
		return nil, err
	}

	fn, err := L.LoadString(source)
	if err != nil {
		L.Close()
		return nil, oops.Code("SCRIPT_COMPILE").
			With("command", name).
			Wrap(err)
	}

	return &Expr{
		name:  name,
		state: L,
		fn:    fn,
	}, nil
}

// Expr is a compiled command body bound to its own sandboxed state.
// Calls are serialized; the state is single-threaded by construction.
type Expr struct {
	name   string
	state  *lua.LState
	fn     *lua.LFunction
	mu     sync.Mutex
	closed bool
}

// Name returns the chunk label given at compile time.
func (x *Expr) Name() string { return x.name }

// Call invokes the expression with the given argument map, marshalled to a
// Lua table. Supported value kinds: string, bool, int, int64, float64.
func (x *Expr) Call(ctx context.Context, arg map[string]any) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.closed {
		return oops.Code("SCRIPT_CLOSED").
			With("command", x.name).
			Errorf("expression %s has been closed", x.name)
	}

	x.state.SetContext(ctx)
	defer x.state.RemoveContext()

	if err := x.state.CallByParam(lua.P{
		Fn:      x.fn,
		NRet:    0,
		Protect: true,
	}, toTable(x.state, arg)); err != nil {
		return oops.Code("SCRIPT_RUNTIME").
			With("command", x.name).
			Wrap(err)
	}
	return nil
}

// Close releases the underlying Lua state. Further calls fail.
func (x *Expr) Close() {
	x.mu.Lock()
	defer x.mu.Unlock()
	if !x.closed {
		x.state.Close()
		x.closed = true
	}
}

func toTable(L *lua.LState, arg map[string]any) *lua.LTable {
	t := L.NewTable()
	for k, v := range arg {
		switch val := v.(type) {
		case string:
			t.RawSetString(k, lua.LString(val))
		case bool:
			t.RawSetString(k, lua.LBool(val))
		case int:
			t.RawSetString(k, lua.LNumber(val))
		case int64:
			t.RawSetString(k, lua.LNumber(val))
		case float64:
			t.RawSetString(k, lua.LNumber(val))
		}
	}
	return t
}
