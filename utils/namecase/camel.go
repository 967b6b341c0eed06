// File: camel.go
// Title: Camel Case Strategy
// Description: Splits names at letter-case transitions and joins words by
//              capitalizing them. Non-letters are classified by a policy.
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
	"unicode"
	"unicode/utf8"
)

// NonLetterPolicy decides how CamelCase classifies characters that are not
// ASCII letters
type NonLetterPolicy int

const (
	// AsLower treats non-letters as lower case
	AsLower NonLetterPolicy = iota
	// AsUpper treats non-letters as upper case
	AsUpper
	// Independent puts runs of non-letters into their own words
	Independent
	// Reject fails the split on the first non-letter
	Reject
)

var policyNames = map[NonLetterPolicy]string{
	AsLower:     "as_lower",
	AsUpper:     "as_upper",
	Independent: "independent",
	Reject:      "reject",
}

// String returns the policy name
func (p NonLetterPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("NonLetterPolicy(%d)", int(p))
}

// IsValid reports whether p is a known policy
func (p NonLetterPolicy) IsValid() bool {
	_, ok := policyNames[p]
	return ok
}

// ParseNonLetterPolicy parses a policy name. Hyphens and case are ignored,
// so "As-Lower" and "as_lower" are the same policy.
func ParseNonLetterPolicy(s string) (NonLetterPolicy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for p, name := range policyNames {
		if name == normalized {
			return p, nil
		}
	}
	return AsLower, configError("namecase.ParseNonLetterPolicy",
		fmt.Sprintf("unknown non-letter policy %q", s))
}

// CamelOptions configures a CamelCase strategy
type CamelOptions struct {
	// Capitalized makes Join upper-case the first word's first character
	Capitalized bool
	// NonLetters classifies characters other than ASCII letters
	NonLetters NonLetterPolicy
	// Words transforms every word after case adjustment. nil keeps words as they are.
	Words WordHandler
}

// CamelCase splits and joins names like "firstSecond" or "FirstSecond"
type CamelCase struct {
	capitalized bool
	nonLetters  NonLetterPolicy
	words       WordHandler
}

// NewCamelCase creates a camel case strategy
func NewCamelCase(opts CamelOptions) (*CamelCase, error) {
	if !opts.NonLetters.IsValid() {
		return nil, configError("namecase.NewCamelCase",
			fmt.Sprintf("invalid non-letter policy %d", int(opts.NonLetters)))
	}

	words := opts.Words
	if words == nil {
		words = Identity
	}

	return &CamelCase{
		capitalized: opts.Capitalized,
		nonLetters:  opts.NonLetters,
		words:       words,
	}, nil
}

// Capitalized reports whether joined names start upper case
func (c *CamelCase) Capitalized() bool {
	return c.capitalized
}

// NonLetters returns the non-letter policy
func (c *CamelCase) NonLetters() NonLetterPolicy {
	return c.nonLetters
}

// String describes the strategy
func (c *CamelCase) String() string {
	return fmt.Sprintf("camel(capitalized=%t, non_letters=%s)", c.capitalized, c.nonLetters)
}

type charClass int

const (
	classLower charClass = iota
	classUpper
	classNonLetter
)

func (c *CamelCase) classify(r rune, index int) (charClass, error) {
	switch {
	case 'a' <= r && r <= 'z':
		return classLower, nil
	case 'A' <= r && r <= 'Z':
		return classUpper, nil
	}

	switch c.nonLetters {
	case AsLower:
		return classLower, nil
	case AsUpper:
		return classUpper, nil
	case Independent:
		return classNonLetter, nil
	}
	return classNonLetter, unclassifiable(r, index, c.nonLetters)
}

// Split returns the words of name
func (c *CamelCase) Split(name string) ([]string, error) {
	spans, err := c.SplitSpans(name)
	if err != nil {
		return nil, err
	}
	return texts(spans), nil
}

// SplitSpans returns the words of name with their byte offsets
func (c *CamelCase) SplitSpans(name string) ([]Word, error) {
	if utf8.RuneCountInString(name) <= 1 {
		return []Word{{Name: name, End: len(name)}}, nil
	}

	var spans []Word
	start := 0
	prevClass := classLower
	prevIndex := 0
	upperRun := 0

	for i, r := range name {
		class, err := c.classify(r, i)
		if err != nil {
			return nil, err
		}

		if i > 0 && class != prevClass {
			cut := i
			if prevClass == classUpper && class == classLower {
				// a single upper letter starts the lower word, a longer run
				// gives its last letter to the lower word
				cut = -1
				if upperRun > 1 {
					cut = prevIndex
				}
			}
			if cut > start {
				spans = append(spans, Word{Name: name, Start: start, End: cut})
				start = cut
			}
		}

		if class == classUpper {
			upperRun++
		} else {
			upperRun = 0
		}
		prevClass, prevIndex = class, i
	}

	return append(spans, Word{Name: name, Start: start, End: len(name)}), nil
}

// Join builds a camel case name from words
func (c *CamelCase) Join(words []string) string {
	var b strings.Builder
	for i, word := range words {
		switch {
		case i > 0, c.capitalized:
			word = capitalize(word)
		case !secondIsUpper(word):
			word = uncapitalize(word)
		}
		b.WriteString(c.words(i, word))
	}
	return b.String()
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || unicode.IsUpper(r) {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

func uncapitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || unicode.IsLower(r) {
		return word
	}
	return string(unicode.ToLower(r)) + word[size:]
}

func secondIsUpper(word string) bool {
	_, size := utf8.DecodeRuneInString(word)
	if size == 0 || size >= len(word) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(word[size:])
	return 'A' <= r && r <= 'Z'
}
