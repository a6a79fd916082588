// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package scope

import (
	"log/slog"
	"sync"
)

// Matcher matches selectors against scopes, caching compiled selectors.
// It is thread-safe for concurrent access.
type Matcher struct {
	mu    sync.RWMutex
	cache map[string]*Compiled // nil entry marks a selector that failed to compile
}

// NewMatcher creates an empty matcher.
func NewMatcher() *Matcher {
	return &Matcher{
		cache: make(map[string]*Compiled),
	}
}

// Matches reports whether selector matches scope. The empty selector
// matches everything. An invalid selector matches nothing; the compile
// failure is logged once per selector.
func (m *Matcher) Matches(selector, scope string) bool {
	if selector == "" {
		return true
	}

	m.mu.RLock()
	c, cached := m.cache[selector]
	m.mu.RUnlock()

	if !cached {
		var err error
		c, err = Compile(selector)
		if err != nil {
			slog.Warn("invalid scope selector",
				"selector", selector,
				"error", err)
			c = nil
		}
		m.mu.Lock()
		m.cache[selector] = c
		m.mu.Unlock()
	}

	if c == nil {
		return false
	}
	return c.Matches(scope)
}
