// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sel, err := Parse("source.go string, comment - block")
	require.NoError(t, err)
	require.Len(t, sel.Alternatives, 2)

	assert.Equal(t, []string{"source.go", "string"}, sel.Alternatives[0].Chain.Parts)
	assert.Nil(t, sel.Alternatives[0].Exclude)

	assert.Equal(t, []string{"comment"}, sel.Alternatives[1].Chain.Parts)
	require.NotNil(t, sel.Alternatives[1].Exclude)
	assert.Equal(t, []string{"block"}, sel.Alternatives[1].Exclude.Parts)
}

func TestParse_Invalid(t *testing.T) {
	for _, selector := range []string{",", "source -", "- comment", "a,,b"} {
		t.Run(selector, func(t *testing.T) {
			_, err := Parse(selector)
			assert.Error(t, err)
		})
	}
}

func TestCompiled_Matches(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		scope    string
		want     bool
	}{
		{
			name:     "exact element",
			selector: "source.go",
			scope:    "source.go",
			want:     true,
		},
		{
			name:     "dot prefix of element",
			selector: "source.go",
			scope:    "source.go.template",
			want:     true,
		},
		{
			name:     "component must match fully",
			selector: "source.go",
			scope:    "source.gox",
			want:     false,
		},
		{
			name:     "element anywhere in stack",
			selector: "string",
			scope:    "source.go string.quoted.double",
			want:     true,
		},
		{
			name:     "descendant chain in order",
			selector: "source.go string",
			scope:    "source.go string.quoted",
			want:     true,
		},
		{
			name:     "descendant chain out of order",
			selector: "string source.go",
			scope:    "source.go string.quoted",
			want:     false,
		},
		{
			name:     "alternative matches",
			selector: "text.html, text.xml",
			scope:    "text.xml",
			want:     true,
		},
		{
			name:     "no alternative matches",
			selector: "text.html, text.xml",
			scope:    "source.go",
			want:     false,
		},
		{
			name:     "exclusion suppresses",
			selector: "comment - comment.block",
			scope:    "source.go comment.block",
			want:     false,
		},
		{
			name:     "exclusion inert when absent",
			selector: "comment - comment.block",
			scope:    "source.go comment.line",
			want:     true,
		},
		{
			name:     "glob component",
			selector: "source.*",
			scope:    "source.python",
			want:     true,
		},
		{
			name:     "glob component no match",
			selector: "source.*",
			scope:    "text.plain",
			want:     false,
		},
		{
			name:     "empty scope",
			selector: "source",
			scope:    "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Compile(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Matches(tt.scope))
			assert.Equal(t, tt.selector, c.String())
		})
	}
}

func TestMatcher_Matches(t *testing.T) {
	m := NewMatcher()

	assert.True(t, m.Matches("", "anything at.all"))
	assert.True(t, m.Matches("source.go", "source.go string"))
	assert.False(t, m.Matches("comment", "source.go string"))

	// Compiled selectors are cached; a second query takes the cached path.
	assert.True(t, m.Matches("source.go", "source.go"))
}

func TestMatcher_InvalidSelector(t *testing.T) {
	m := NewMatcher()

	// Invalid selectors match nothing, and keep matching nothing from the
	// cached failure marker.
	assert.False(t, m.Matches(",", "source.go"))
	assert.False(t, m.Matches(",", "source.go"))
}
