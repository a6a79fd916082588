// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package script

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEngine_CompileAndCall(t *testing.T) {
	engine := NewEngine()

	expr, err := engine.Compile("greet", `
		local inv = ...
		greeting = "hello " .. inv.args
	`)
	require.NoError(t, err)
	defer expr.Close()

	assert.Equal(t, "greet", expr.Name())

	err = expr.Call(context.Background(), map[string]any{"args": "world"})
	require.NoError(t, err)
}

func TestEngine_CallReceivesArgument(t *testing.T) {
	engine := NewEngine()

	// The chunk fails unless the invocation table carries the expected
	// fields.
	expr, err := engine.Compile("check", `
		local inv = ...
		assert(inv.token == "gr", "bad token")
		assert(inv.bang == true, "bad bang")
		assert(inv.count == 3, "bad count")
	`)
	require.NoError(t, err)
	defer expr.Close()

	require.NoError(t, expr.Call(context.Background(), map[string]any{
		"token": "gr",
		"bang":  true,
		"count": 3,
	}))

	err = expr.Call(context.Background(), map[string]any{"token": "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad token")
}

func TestEngine_CompileError(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Compile("broken", `this is not lua`)
	require.Error(t, err)
}

func TestEngine_RuntimeError(t *testing.T) {
	engine := NewEngine()

	expr, err := engine.Compile("boom", `error("exploded")`)
	require.NoError(t, err)
	defer expr.Close()

	err = expr.Call(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exploded")
}

func TestEngine_Sandbox(t *testing.T) {
	engine := NewEngine()

	// os and io are not loaded; dofile and friends are nilled out.
	for _, source := range []string{
		`assert(os == nil)`,
		`assert(io == nil)`,
		`assert(dofile == nil)`,
		`assert(loadstring == nil)`,
	} {
		expr, err := engine.Compile("sandbox", source)
		require.NoError(t, err)
		assert.NoError(t, expr.Call(context.Background(), nil))
		expr.Close()
	}
}

func TestExpr_CallAfterClose(t *testing.T) {
	engine := NewEngine()

	expr, err := engine.Compile("closed", `return`)
	require.NoError(t, err)

	expr.Close()
	expr.Close() // idempotent

	err = expr.Call(context.Background(), nil)
	require.Error(t, err)
}
