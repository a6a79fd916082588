// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

// Package scope implements TextMate-style scope selectors: expressions over
// dot-separated scope names used to restrict where an ex command applies.
// A selector like "source.go string, comment - block" matches a scope when
// any comma-separated alternative matches; "-" excludes; space-separated
// parts must match elements of the scope in order; name components may use
// glob wildcards ("source.*").
package scope

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// selectorLexer tokenizes selector expressions. Parts are dotted names
// whose components may contain the glob wildcards * and ?.
var selectorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comma", Pattern: `,`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Part", Pattern: `[a-zA-Z0-9_*?]+(\.[a-zA-Z0-9_*?]+)*`},
	{Name: "whitespace", Pattern: `\s+`},
})

// Selector is the parsed form of a selector expression.
//
// Grammar: alternative ("," alternative)*
type Selector struct {
	Alternatives []*Alternative `parser:"@@ (',' @@)*"`
}

// Alternative is one comma-separated branch, optionally with an exclusion.
//
// Grammar: chain ("-" chain)?
type Alternative struct {
	Chain   *Chain `parser:"@@"`
	Exclude *Chain `parser:"('-' @@)?"`
}

// Chain is a descendant chain of scope parts.
type Chain struct {
	Parts []string `parser:"@Part+"`
}

var parser = participle.MustBuild[Selector](
	participle.Lexer(selectorLexer),
)

// Parse parses a selector expression into its AST.
func Parse(selector string) (*Selector, error) {
	sel, err := parser.ParseString("", selector)
	if err != nil {
		return nil, oops.Code("INVALID_SELECTOR").
			With("selector", selector).
			Wrap(err)
	}
	return sel, nil
}

// compiledPart is one dotted scope part with per-component globs.
type compiledPart struct {
	components []glob.Glob
}

// matches reports whether the part matches a single scope element. A part
// matches when it is a dot-prefix of the element, component by component:
// "source.go" matches "source.go.template" but not "source.gox".
func (p compiledPart) matches(element string) bool {
	comps := strings.Split(element, ".")
	if len(p.components) > len(comps) {
		return false
	}
	for i, g := range p.components {
		if !g.Match(comps[i]) {
			return false
		}
	}
	return true
}

type compiledChain []compiledPart

// matches reports whether the chain's parts match elements of the scope
// stack as an ordered subsequence.
func (c compiledChain) matches(elements []string) bool {
	i := 0
	for _, el := range elements {
		if i == len(c) {
			break
		}
		if c[i].matches(el) {
			i++
		}
	}
	return i == len(c)
}

type compiledAlternative struct {
	chain   compiledChain
	exclude compiledChain // nil when no exclusion
}

// Compiled is a selector compiled for repeated matching.
type Compiled struct {
	selector string
	alts     []compiledAlternative
}

// Compile parses and compiles a selector expression.
func Compile(selector string) (*Compiled, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	c := &Compiled{selector: selector}
	for _, alt := range sel.Alternatives {
		ca := compiledAlternative{}
		ca.chain, err = compileChain(selector, alt.Chain)
		if err != nil {
			return nil, err
		}
		if alt.Exclude != nil {
			ca.exclude, err = compileChain(selector, alt.Exclude)
			if err != nil {
				return nil, err
			}
		}
		c.alts = append(c.alts, ca)
	}
	return c, nil
}

func compileChain(selector string, ch *Chain) (compiledChain, error) {
	var out compiledChain
	for _, part := range ch.Parts {
		var cp compiledPart
		for _, comp := range strings.Split(part, ".") {
			g, err := glob.Compile(comp)
			if err != nil {
				return nil, oops.Code("INVALID_SELECTOR").
					With("selector", selector).
					With("component", comp).
					Wrap(err)
			}
			cp.components = append(cp.components, g)
		}
		out = append(out, cp)
	}
	return out, nil
}

// String returns the source expression.
func (c *Compiled) String() string { return c.selector }

// Matches reports whether the selector matches the given scope: a
// space-separated stack of dot-separated scope names, innermost last.
func (c *Compiled) Matches(scope string) bool {
	elements := strings.Fields(scope)
	for _, alt := range c.alts {
		if !alt.chain.matches(elements) {
			continue
		}
		if alt.exclude != nil && alt.exclude.matches(elements) {
			continue
		}
		return true
	}
	return false
}
