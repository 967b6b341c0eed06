// File: syntax.go
// Title: Template Syntax and Parser
// Description: Scans template text into literal and parameter segments in a
//              single pass, reporting syntax errors with their byte offset.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package strtemplate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	ckerror "github.com/msto63/casekit/core/error"
)

// Default delimiters
const (
	DefaultPrefix = "${"
	DefaultSuffix = "}"
	DefaultEscape = '\\'

	// FilterSeparator separates the parameter name from its filters
	FilterSeparator = "|"
)

// Syntax defines the delimiters of a template
type Syntax struct {
	Prefix string // opens a parameter
	Suffix string // closes a parameter
	Escape rune   // 0 disables escaping
}

// DefaultSyntax returns the ${name} syntax with backslash escapes
func DefaultSyntax() Syntax {
	return Syntax{Prefix: DefaultPrefix, Suffix: DefaultSuffix, Escape: DefaultEscape}
}

// Validate checks that the syntax can be parsed unambiguously
func (s Syntax) Validate() error {
	if s.Prefix == "" || s.Suffix == "" {
		return syntaxConfigError("template prefix and suffix must not be empty")
	}
	if s.Escape != 0 && strings.ContainsRune(s.Prefix, s.Escape) {
		return syntaxConfigError(fmt.Sprintf("escape %q must not be part of the prefix %q", s.Escape, s.Prefix))
	}
	return nil
}

func syntaxConfigError(message string) error {
	return ckerror.New(message).
		WithCode(ckerror.CodeInvalidConfig).
		WithOperation("strtemplate.Syntax.Validate")
}

func syntaxError(message string, position int) error {
	return ckerror.Newf("%s at offset %d", message, position).
		WithCode(ckerror.CodeTemplateSyntax).
		WithOperation("strtemplate.Parse").
		WithDetail("position", position)
}

// Parse parses text with the default syntax
func Parse(text string) (*Template, error) {
	return DefaultSyntax().Parse(text)
}

// MustParse is like Parse but panics on error
func MustParse(text string) *Template {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse parses text into a template
func (s Syntax) Parse(text string) (*Template, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sc := scanner{syntax: s, input: text}
	if s.Escape != 0 {
		sc.escape = string(s.Escape)
	}
	if err := sc.run(); err != nil {
		return nil, err
	}
	return &Template{source: text, syntax: s, segments: sc.segments}, nil
}

// scanner splits template text into segments
type scanner struct {
	syntax   Syntax
	escape   string
	input    string
	pos      int
	literal  strings.Builder
	litStart int
	segments []Segment
}

func (sc *scanner) run() error {
	for sc.pos < len(sc.input) {
		rest := sc.input[sc.pos:]
		switch {
		case sc.escape != "" && strings.HasPrefix(rest, sc.escape):
			sc.readEscape(rest[len(sc.escape):])
		case strings.HasPrefix(rest, sc.syntax.Prefix):
			if err := sc.readParam(); err != nil {
				return err
			}
		default:
			_, size := utf8.DecodeRuneInString(rest)
			sc.emitLiteral(rest[:size], size)
		}
	}
	sc.flushLiteral()
	return nil
}

func (sc *scanner) readEscape(after string) {
	switch {
	case strings.HasPrefix(after, sc.syntax.Prefix):
		sc.emitLiteral(sc.syntax.Prefix, len(sc.escape)+len(sc.syntax.Prefix))
	case strings.HasPrefix(after, sc.escape):
		sc.emitLiteral(sc.escape, 2*len(sc.escape))
	default:
		sc.emitLiteral(sc.escape, len(sc.escape))
	}
}

func (sc *scanner) readParam() error {
	start := sc.pos
	bodyStart := start + len(sc.syntax.Prefix)
	end := strings.Index(sc.input[bodyStart:], sc.syntax.Suffix)
	if end < 0 {
		return syntaxError("unterminated parameter", start)
	}

	segment, err := parseParam(sc.input[bodyStart:bodyStart+end], start)
	if err != nil {
		return err
	}

	sc.flushLiteral()
	sc.segments = append(sc.segments, segment)
	sc.pos = bodyStart + end + len(sc.syntax.Suffix)
	return nil
}

// emitLiteral appends text to the current literal and advances by consumed bytes
func (sc *scanner) emitLiteral(text string, consumed int) {
	if sc.literal.Len() == 0 {
		sc.litStart = sc.pos
	}
	sc.literal.WriteString(text)
	sc.pos += consumed
}

func (sc *scanner) flushLiteral() {
	if sc.literal.Len() == 0 {
		return
	}
	sc.segments = append(sc.segments, Segment{
		Kind:     SegmentLiteral,
		Text:     sc.literal.String(),
		Position: sc.litStart,
	})
	sc.literal.Reset()
}

func parseParam(body string, position int) (Segment, error) {
	parts := strings.Split(body, FilterSeparator)
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Segment{}, syntaxError("empty parameter name", position)
	}

	var filters []string
	for _, part := range parts[1:] {
		filter := strings.TrimSpace(part)
		if filter == "" {
			return Segment{}, syntaxError(fmt.Sprintf("empty filter in parameter %q", name), position)
		}
		filters = append(filters, filter)
	}

	return Segment{Kind: SegmentParam, Text: name, Filters: filters, Position: position}, nil
}
