// File: template.go
// Title: Template Execution
// Description: Renders parsed templates with values from a resolver and
//              filters applied in order.
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

	ckerror "github.com/msto63/casekit/core/error"
)

// SegmentKind distinguishes literal text from parameters
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentParam
)

// String returns the kind name
func (k SegmentKind) String() string {
	if k == SegmentParam {
		return "param"
	}
	return "literal"
}

// Segment is one piece of a parsed template
type Segment struct {
	Kind     SegmentKind
	Text     string   // literal text or parameter name
	Filters  []string // filter names of a parameter, applied left to right
	Position int      // byte offset in the source
}

// Resolver supplies parameter values
type Resolver interface {
	Resolve(name string) (string, bool)
}

// MapResolver resolves parameters from a map
type MapResolver map[string]string

// Resolve implements Resolver
func (m MapResolver) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(name string) (string, bool)

// Resolve implements Resolver
func (f ResolverFunc) Resolve(name string) (string, bool) {
	return f(name)
}

// Template is a parsed template
type Template struct {
	source   string
	syntax   Syntax
	segments []Segment
}

// Source returns the unparsed text
func (t *Template) Source() string {
	return t.source
}

// Syntax returns the syntax the template was parsed with
func (t *Template) Syntax() Syntax {
	return t.syntax
}

// Segments returns a copy of the parsed segments
func (t *Template) Segments() []Segment {
	return append([]Segment(nil), t.segments...)
}

// Params returns the parameter names in order of first appearance
func (t *Template) Params() []string {
	seen := make(map[string]bool)
	var names []string
	for _, seg := range t.segments {
		if seg.Kind == SegmentParam && !seen[seg.Text] {
			seen[seg.Text] = true
			names = append(names, seg.Text)
		}
	}
	return names
}

// Execute renders the template. Every parameter must resolve and every
// filter must exist in filters.
func (t *Template) Execute(values Resolver, filters Filters) (string, error) {
	var b strings.Builder
	b.Grow(len(t.source))

	for _, seg := range t.segments {
		if seg.Kind == SegmentLiteral {
			b.WriteString(seg.Text)
			continue
		}

		var (
			value string
			ok    bool
		)
		if values != nil {
			value, ok = values.Resolve(seg.Text)
		}
		if !ok {
			return "", ckerror.Newf("missing value for parameter %q", seg.Text).
				WithCode(ckerror.CodeNotFound).
				WithOperation("strtemplate.Template.Execute").
				WithDetail("parameter", seg.Text).
				WithDetail("position", seg.Position)
		}

		for _, name := range seg.Filters {
			filter, exists := filters[name]
			if !exists {
				return "", ckerror.Newf("unknown filter %q for parameter %q", name, seg.Text).
					WithCode(ckerror.CodeNotFound).
					WithOperation("strtemplate.Template.Execute").
					WithDetail("filter", name).
					WithDetail("position", seg.Position)
			}
			value = filter(value)
		}
		b.WriteString(value)
	}
	return b.String(), nil
}
