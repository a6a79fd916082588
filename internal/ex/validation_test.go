// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "write", wantErr: false},
		{name: "single letter", input: "w", wantErr: false},
		{name: "digits and underscore", input: "tab2_new", wantErr: false},
		{name: "hyphen", input: "buf-next", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "leading digit", input: "2write", wantErr: true},
		{name: "internal space", input: "w rite", wantErr: true},
		{name: "bang", input: "w!", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxNameLength+1), wantErr: true},
		{name: "max length", input: strings.Repeat("a", MaxNameLength), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsInvalidOperation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
