// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"strings"

	"github.com/samber/oops"
)

// Error codes for registry and mapping failures.
const (
	CodeInvalidOperation = "INVALID_OPERATION"
	CodeNotFound         = "NOT_FOUND"
	CodeAmbiguous        = "AMBIGUOUS"
	CodeUnknownMapping   = "UNKNOWN_MAPPING"
)

// ErrNotFound creates an error for a token matching no command name or prefix.
func ErrNotFound(token string) error {
	return oops.Code(CodeNotFound).
		With("token", token).
		Errorf("not an editor command: %s", token)
}

// ErrAmbiguous creates an error for a token that is a prefix of two or more
// distinct commands. candidates carries the canonical names of all matches.
func ErrAmbiguous(token string, candidates []string) error {
	return oops.Code(CodeAmbiguous).
		With("token", token).
		With("candidates", candidates).
		Errorf("ambiguous command: %s", token)
}

// ErrUnknownMapping creates an error for a hint request on a mapping that is
// not in the registry.
func ErrUnknownMapping(name string) error {
	return oops.Code(CodeUnknownMapping).
		With("command", name).
		Errorf("mapping %s is not in this registry", name)
}

// IsNotFound reports whether err is a NotFound lookup failure.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAmbiguous reports whether err is an Ambiguous lookup failure.
func IsAmbiguous(err error) bool {
	return hasCode(err, CodeAmbiguous)
}

// IsInvalidOperation reports whether err is a contract violation.
func IsInvalidOperation(err error) bool {
	return hasCode(err, CodeInvalidOperation)
}

// Candidates extracts the canonical names carried by an Ambiguous error.
// Returns nil for any other error.
func Candidates(err error) []string {
	oopsErr, ok := oops.AsOops(err)
	if !ok || oopsErr.Code() != CodeAmbiguous {
		return nil
	}
	names, _ := oopsErr.Context()["candidates"].([]string)
	return names
}

func hasCode(err error, code string) bool {
	oopsErr, ok := oops.AsOops(err)
	return ok && oopsErr.Code() == code
}

// UserMessage extracts a command-line-facing message from an error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return err.Error()
	}

	switch oopsErr.Code() {
	case CodeNotFound:
		if token, ok := oopsErr.Context()["token"].(string); ok {
			return "Not an editor command: " + token
		}
		return "Not an editor command."
	case CodeAmbiguous:
		if names := Candidates(err); len(names) > 0 {
			return "Ambiguous command, could be: " + strings.Join(names, ", ")
		}
		return "Ambiguous command."
	case CodeUnknownMapping:
		return "Unknown command mapping."
	default:
		return err.Error()
	}
}
