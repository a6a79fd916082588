// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"strings"

	"github.com/samber/oops"
)

// Syntax flag characters. Each flag describes one argument shape the
// command body accepts. The flags are carried verbatim for the argument
// parser; only FlagBang and FlagNoBar influence anything in this package.
const (
	FlagBang          = '!' // allow ! directly after command name
	FlagRange         = 'r' // allow range
	FlagWholeFile     = '%' // default to whole file if no range
	FlagPlusCommand   = '+' // allow "+command" argument
	FlagCount         = 'c' // allow count > 0
	FlagExtra         = 'e' // allow extra argument(s)
	FlagExtraRequired = 'E' // require extra argument(s)
	FlagOneExtra      = '1' // only one extra argument allowed
	FlagExpand        = 'x' // expand wildcards and filename meta chars in extra arguments
	FlagRegister      = 'R' // allow register
	FlagLine          = 'l' // allow an optional line argument
	FlagLineRequired  = 'L' // require a line argument
	FlagSubstitute    = '~' // allow /pattern/replacement/flags argument
	FlagPattern       = '/' // allow /pattern/flags argument
	FlagNoBar         = '|' // do NOT end command at a bar character
	FlagModifies      = 'm' // command modifies the document
)

// flagVocabulary is the full set of recognized syntax flags.
const flagVocabulary = "!r%+ceE1xRlL~/|m"

// Syntax is a command's syntax-flag string. The zero value accepts a bare
// command with no arguments.
type Syntax string

// Allows reports whether the given flag character is present.
func (s Syntax) Allows(flag byte) bool {
	return strings.IndexByte(string(s), flag) >= 0
}

// Validate rejects flag characters outside the vocabulary.
func (s Syntax) Validate() error {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(flagVocabulary, s[i]) < 0 {
			return oops.Code(CodeInvalidOperation).
				With("syntax", string(s)).
				Errorf("unknown syntax flag %q", string(s[i]))
		}
	}
	return nil
}
