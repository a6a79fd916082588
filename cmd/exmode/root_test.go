// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with the given args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["resolve"])
	assert.True(t, names["hint"])
	assert.True(t, names["list"])
}

func TestResolveCmd(t *testing.T) {
	out, _, err := run(t, "resolve", "wr")
	require.NoError(t, err)
	assert.Equal(t, "write\n", out)
}

func TestResolveCmd_ExactAlias(t *testing.T) {
	out, _, err := run(t, "resolve", "w")
	require.NoError(t, err)
	assert.Equal(t, "write\n", out)
}

func TestResolveCmd_Ambiguous(t *testing.T) {
	_, errOut, err := run(t, "resolve", "n")
	require.Error(t, err)
	assert.Contains(t, errOut, "Ambiguous command")
	assert.Contains(t, errOut, "new")
	assert.Contains(t, errOut, "normal")
}

func TestResolveCmd_NotFound(t *testing.T) {
	_, errOut, err := run(t, "resolve", "zz")
	require.Error(t, err)
	assert.Contains(t, errOut, "Not an editor command: zz")
}

func TestResolveCmd_Scoped(t *testing.T) {
	_, _, err := run(t, "resolve", "eval", "--scope", "text.plain")
	require.Error(t, err)

	out, _, err := run(t, "resolve", "eval", "--scope", "source.go")
	require.NoError(t, err)
	assert.Equal(t, "eval\n", out)
}

func TestHintCmd(t *testing.T) {
	out, _, err := run(t, "hint", "write")
	require.NoError(t, err)
	assert.Equal(t, "[range]w[rite][!] [file]\n", out)
}

func TestHintCmd_Prefix(t *testing.T) {
	out, _, err := run(t, "hint", "tabedit", "--prefix", "tabn")
	require.NoError(t, err)
	assert.Equal(t, "tabn[ew] [file]\n", out)
}

func TestHintCmd_All(t *testing.T) {
	out, _, err := run(t, "hint")
	require.NoError(t, err)
	assert.Contains(t, out, "[range]w[rite][!] [file]")
	assert.Contains(t, out, "q[uit][!]")
}

func TestListCmd(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "write")
	assert.Contains(t, out, "tabedit")
	assert.Contains(t, out, "Write the buffer to a file.")
}

func TestResolveCmd_UserCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
commands:
  - names: [lorem]
    lua: |
      return
`), 0o600))

	out, _, err := run(t, "resolve", "lor", "--commands", path)
	require.NoError(t, err)
	assert.Equal(t, "lorem\n", out)
}
