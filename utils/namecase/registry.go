// File: registry.go
// Title: Style Registry
// Description: Named lookup of naming cases with suggestions for misspelled
//              names. The registry is safe for concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package namecase

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	ckerror "github.com/msto63/casekit/core/error"
)

// maxSuggestions limits the names offered for an unknown style
const maxSuggestions = 3

// Registry maps style names to naming cases
type Registry struct {
	mu     sync.RWMutex
	styles map[string]NamingCase
}

// NewRegistry creates a registry holding the pre-built styles
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for name, nc := range builtins {
		r.styles[name] = nc
	}
	return r
}

// NewEmptyRegistry creates a registry without any styles
func NewEmptyRegistry() *Registry {
	return &Registry{styles: make(map[string]NamingCase)}
}

// NormalizeName folds case and treats '_' and ' ' like '-',
// so "Lower_Camel" finds "lower-camel"
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(name)
}

// Register adds nc under name
func (r *Registry) Register(name string, nc NamingCase) error {
	key := NormalizeName(name)
	if key == "" {
		return configError("namecase.Registry.Register", "style name must not be empty")
	}
	if nc == nil {
		return configError("namecase.Registry.Register",
			fmt.Sprintf("style %q has no naming case", key))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.styles[key]; exists {
		return ckerror.Newf("style %q is already registered", key).
			WithCode(ckerror.CodeDuplicateEntry).
			WithOperation("namecase.Registry.Register").
			WithDetail("style", key)
	}
	r.styles[key] = nc
	return nil
}

// Get returns the naming case registered under name
func (r *Registry) Get(name string) (NamingCase, error) {
	key := NormalizeName(name)

	r.mu.RLock()
	nc, ok := r.styles[key]
	r.mu.RUnlock()
	if ok {
		return nc, nil
	}

	suggestions := r.Suggest(key)
	message := fmt.Sprintf("unknown naming style %q", name)
	if len(suggestions) > 0 {
		message += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
	}
	return nil, ckerror.New(message).
		WithCode(ckerror.CodeNotFound).
		WithOperation("namecase.Registry.Get").
		WithDetail("style", name).
		WithDetail("suggestions", suggestions)
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[NormalizeName(name)]
	return ok
}

// Names returns all registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns up to three registered names close to name, best first
func (r *Registry) Suggest(name string) []string {
	key := NormalizeName(name)
	if key == "" {
		return nil
	}

	matches := fuzzy.Find(key, r.Names())
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// Convert converts name between two registered styles
func (r *Registry) Convert(name, from, to string) (string, error) {
	src, err := r.Get(from)
	if err != nil {
		return "", err
	}
	dst, err := r.Get(to)
	if err != nil {
		return "", err
	}
	return Convert(name, src, dst)
}
