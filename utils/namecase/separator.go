// File: separator.go
// Title: Separator Case Strategy
// Description: Splits names at a literal separator and joins words with it.
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
	"strings"
	"unicode/utf8"
)

// SeparatorOptions configures a SeparatorCase strategy
type SeparatorOptions struct {
	// Separator is placed between words. It must not be empty.
	Separator string
	// Words transforms every word. nil keeps words as they are.
	Words WordHandler
}

// SeparatorCase splits and joins names like "first-second" or "FIRST_SECOND"
type SeparatorCase struct {
	separator string
	words     WordHandler
}

// NewSeparatorCase creates a separator case strategy
func NewSeparatorCase(opts SeparatorOptions) (*SeparatorCase, error) {
	if opts.Separator == "" {
		return nil, configError("namecase.NewSeparatorCase", "separator must not be empty")
	}

	words := opts.Words
	if words == nil {
		words = Identity
	}

	return &SeparatorCase{separator: opts.Separator, words: words}, nil
}

// Separator returns the separator text
func (s *SeparatorCase) Separator() string {
	return s.separator
}

// String describes the strategy
func (s *SeparatorCase) String() string {
	return fmt.Sprintf("separator(%q)", s.separator)
}

// Split returns the words of name
func (s *SeparatorCase) Split(name string) ([]string, error) {
	spans, err := s.SplitSpans(name)
	if err != nil {
		return nil, err
	}
	return texts(spans), nil
}

// SplitSpans returns the words of name with their byte offsets.
// Separators are not part of any word.
func (s *SeparatorCase) SplitSpans(name string) ([]Word, error) {
	if utf8.RuneCountInString(name) <= 1 || !strings.Contains(name, s.separator) {
		return []Word{{Name: name, End: len(name)}}, nil
	}

	var spans []Word
	start := 0
	for {
		idx := strings.Index(name[start:], s.separator)
		if idx < 0 {
			break
		}
		spans = append(spans, Word{Name: name, Start: start, End: start + idx})
		start += idx + len(s.separator)
	}
	return append(spans, Word{Name: name, Start: start, End: len(name)}), nil
}

// Join builds a name by transforming words and placing the separator between them
func (s *SeparatorCase) Join(words []string) string {
	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			b.WriteString(s.separator)
		}
		b.WriteString(s.words(i, word))
	}
	return b.String()
}
