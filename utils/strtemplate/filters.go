// File: filters.go
// Title: Template Filters
// Description: Value filters for parameters: plain string transforms,
//              inflection and conversion into registered naming styles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strtemplate

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/msto63/casekit/utils/namecase"
	"github.com/msto63/casekit/utils/stringx"
)

// Filter transforms a parameter value
type Filter func(value string) string

// Filters maps filter names to filters
type Filters map[string]Filter

// Merge returns a new set holding f and other. Filters of other win.
func (f Filters) Merge(other Filters) Filters {
	merged := make(Filters, len(f)+len(other))
	for name, filter := range f {
		merged[name] = filter
	}
	for name, filter := range other {
		merged[name] = filter
	}
	return merged
}

// DefaultFilters returns the style independent filters
func DefaultFilters() Filters {
	return Filters{
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
		"title":    stringx.ToTitleCase,
		"plural":   pluralizeLast,
		"singular": singularizeLast,
	}
}

// CaseFilters returns one filter per style of registry. Values are broken
// into words with stringx.Words, so any input style is accepted.
func CaseFilters(registry *namecase.Registry) Filters {
	filters := make(Filters)
	for _, name := range registry.Names() {
		nc, err := registry.Get(name)
		if err != nil {
			continue
		}
		filters[name] = func(value string) string {
			return stringx.ToStyle(value, nc)
		}
	}
	return filters
}

// pluralizeLast pluralizes the last word and keeps everything before it
func pluralizeLast(value string) string {
	return inflectLast(value, inflection.Plural)
}

func singularizeLast(value string) string {
	return inflectLast(value, inflection.Singular)
}

func inflectLast(value string, inflect func(string) string) string {
	words := stringx.Words(value)
	if len(words) == 0 {
		return value
	}
	last := words[len(words)-1]
	idx := strings.LastIndex(value, last)
	return value[:idx] + inflect(last) + value[idx+len(last):]
}
