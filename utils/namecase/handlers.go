// File: handlers.go
// Title: Word Handlers
// Description: Ready-made word handlers for Join, including locale-aware
//              variants built on golang.org/x/text/cases.
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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identity returns word unchanged
func Identity(_ int, word string) string {
	return word
}

// Upper upper-cases the whole word
func Upper(_ int, word string) string {
	return strings.ToUpper(word)
}

// Lower lower-cases the whole word
func Lower(_ int, word string) string {
	return strings.ToLower(word)
}

// Capitalize upper-cases the first character and keeps the rest
func Capitalize(_ int, word string) string {
	return capitalize(word)
}

// Title upper-cases the first character and lower-cases the rest
func Title(index int, word string) string {
	return titleUnd(index, word)
}

var titleUnd = TitleIn(language.Und)

// UpperIn returns a handler upper-casing words with the rules of tag,
// e.g. Turkish dotted capital I
func UpperIn(tag language.Tag) WordHandler {
	return func(_ int, word string) string {
		// Casers keep state between calls
		return cases.Upper(tag).String(word)
	}
}

// LowerIn returns a handler lower-casing words with the rules of tag
func LowerIn(tag language.Tag) WordHandler {
	return func(_ int, word string) string {
		return cases.Lower(tag).String(word)
	}
}

// TitleIn returns a handler title-casing words with the rules of tag
func TitleIn(tag language.Tag) WordHandler {
	return func(_ int, word string) string {
		return cases.Title(tag).String(word)
	}
}

var wordHandlers = map[string]WordHandler{
	"identity":   Identity,
	"upper":      Upper,
	"lower":      Lower,
	"capitalize": Capitalize,
	"title":      Title,
}

// WordHandlerNames returns the names accepted by ParseWordHandler
func WordHandlerNames() []string {
	names := make([]string, 0, len(wordHandlers))
	for name := range wordHandlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseWordHandler returns the handler registered under name.
// An empty name means identity.
func ParseWordHandler(name string) (WordHandler, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Identity, nil
	}
	if h, ok := wordHandlers[name]; ok {
		return h, nil
	}
	return nil, configError("namecase.ParseWordHandler",
		fmt.Sprintf("unknown word transform %q (want one of %s)", name, strings.Join(WordHandlerNames(), ", ")))
}
