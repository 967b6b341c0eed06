// File: namecase.go
// Title: Naming Case Contract and Conversion
// Description: Declares the NamingCase interface, word handlers and spans,
//              and implements the conversion functions built on top of them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package namecase

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// NamingCase splits names into words and joins words into names
type NamingCase interface {
	// Split returns the words of name in order. It never drops characters
	// other than separators.
	Split(name string) ([]string, error)

	// Join builds a name from words
	Join(words []string) string
}

// WordHandler transforms a word while joining. index is the position of the
// word in the word list. A nil handler leaves words unchanged.
type WordHandler func(index int, word string) string

// Word is a segment of a name, Name[Start:End]
type Word struct {
	Name  string
	Start int
	End   int
}

// String returns the text of the word
func (w Word) String() string {
	return w.Name[w.Start:w.End]
}

// Spanner is implemented by strategies that report word positions
type Spanner interface {
	SplitSpans(name string) ([]Word, error)
}

// Spans splits name with nc and returns the position of every word.
// Strategies that do not implement Spanner are located by searching the
// words in order.
func Spans(nc NamingCase, name string) ([]Word, error) {
	if nc == nil {
		return nil, configError("namecase.Spans", "naming case must not be nil")
	}
	if s, ok := nc.(Spanner); ok {
		return s.SplitSpans(name)
	}

	words, err := nc.Split(name)
	if err != nil {
		return nil, err
	}

	spans := make([]Word, 0, len(words))
	cursor := 0
	for _, w := range words {
		start := cursor
		if idx := strings.Index(name[cursor:], w); idx >= 0 {
			start = cursor + idx
		}
		spans = append(spans, Word{Name: name, Start: start, End: start + len(w)})
		cursor = start + len(w)
	}
	return spans, nil
}

func texts(spans []Word) []string {
	words := make([]string, len(spans))
	for i, s := range spans {
		words[i] = s.String()
	}
	return words
}

// Convert splits name with from and joins the words with to
func Convert(name string, from, to NamingCase) (string, error) {
	words, err := split("namecase.Convert", name, from, to)
	if err != nil {
		return "", err
	}
	return to.Join(words), nil
}

// MustConvert is like Convert but panics on error. It is meant for
// initialising package level values from literals.
func MustConvert(name string, from, to NamingCase) string {
	out, err := Convert(name, from, to)
	if err != nil {
		panic(err)
	}
	return out
}

// ConvertPlural converts name and pluralizes its last word,
// e.g. "user_profile" to "UserProfiles"
func ConvertPlural(name string, from, to NamingCase) (string, error) {
	return convertLast("namecase.ConvertPlural", name, from, to, inflection.Plural)
}

// ConvertSingular converts name and singularizes its last word,
// e.g. "user-categories" to "userCategory"
func ConvertSingular(name string, from, to NamingCase) (string, error) {
	return convertLast("namecase.ConvertSingular", name, from, to, inflection.Singular)
}

func convertLast(op, name string, from, to NamingCase, inflect func(string) string) (string, error) {
	words, err := split(op, name, from, to)
	if err != nil {
		return "", err
	}

	last := len(words) - 1
	if last >= 0 && words[last] != "" {
		words[last] = inflect(words[last])
	}
	return to.Join(words), nil
}

func split(op, name string, from, to NamingCase) ([]string, error) {
	if from == nil || to == nil {
		return nil, configError(op, "source and target naming case must not be nil")
	}
	return from.Split(name)
}
