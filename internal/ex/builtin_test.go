// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.NotEmpty(t, Default().Mappings())
}

func TestRegisterBuiltins_Lookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterBuiltins(reg))

	tests := []struct {
		token string
		want  string
	}{
		{token: "w", want: "write"},
		{token: "write", want: "write"},
		{token: "wq", want: "wq"},
		{token: "q", want: "quit"},
		{token: "qa", want: "quitall"},
		{token: "tabe", want: "tabedit"},
		{token: "tabnew", want: "tabedit"},
		{token: "t", want: "copy"},
		{token: "s", want: "substitute"},
		{token: "norm", want: "normal"},
		{token: "bn", want: "bnext"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			m, err := reg.Lookup(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Name())
		})
	}
}

func TestRegisterBuiltins_AmbiguousPrefixes(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterBuiltins(reg))

	// "n" is contested by new, normal, and number (none has it as an
	// exact alias).
	_, err := reg.Lookup("n")
	require.Error(t, err)
	assert.True(t, IsAmbiguous(err))
	assert.Equal(t, []string{"new", "number", "normal"}, Candidates(err))

	// "ta" is contested by tabedit and tabclose.
	_, err = reg.Lookup("ta")
	require.Error(t, err)
	assert.True(t, IsAmbiguous(err))
}

func TestRegisterBuiltins_Hints(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterBuiltins(reg))

	lookup := func(token string) *Mapping {
		m, err := reg.Lookup(token)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		token string
		want  string
	}{
		{token: "write", want: "[range]w[rite][!] [file]"},
		{token: "wq", want: "[range]wq[!] [file]"},
		{token: "quit", want: "q[uit][!]"},
		{token: "tabedit", want: "tabe[dit] [file]"},
		{token: "substitute", want: "[range]s[ubstitute] [count] /pattern/replacement/[flags]"},
		{token: "move", want: "[range]m[ove] line"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			hint, err := reg.SyntaxHintFor(lookup(tt.token))
			require.NoError(t, err)
			assert.Equal(t, tt.want, hint)
		})
	}
}

func TestRegisterBuiltins_ScopedEval(t *testing.T) {
	reg := NewRegistry(WithScopeMatcher(stubMatcher{}))
	require.NoError(t, RegisterBuiltins(reg))

	_, err := reg.LookupInScope("eval", "text")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	m, err := reg.LookupInScope("eval", "source")
	require.NoError(t, err)
	assert.Equal(t, "eval", m.Name())
}
