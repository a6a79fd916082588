// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"regexp"
	"strings"

	"github.com/samber/oops"
)

// MaxNameLength is the maximum length for command and alias names.
const MaxNameLength = 30

// namePattern validates command and alias names: a letter followed by
// letters, digits, underscores, or hyphens.
var namePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateName validates a command or alias name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return oops.Code(CodeInvalidOperation).
			Errorf("command name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return oops.Code(CodeInvalidOperation).
			With("length", len(name)).
			With("max", MaxNameLength).
			Errorf("command name exceeds maximum length of %d", MaxNameLength)
	}

	if !namePattern.MatchString(name) {
		return oops.Code(CodeInvalidOperation).
			With("name", name).
			Errorf("command name must start with a letter and contain only letters, digits, _ or -")
	}

	return nil
}
