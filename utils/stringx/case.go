// File: case.go
// Title: String Case Conversion Utilities
// Description: Free-form case conversion. Input may mix separators and camel
//              humps; it is broken into words first and then joined in the
//              requested naming style.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-18 v0.2.0: Built on the namecase engine, acronyms kept as one word

package stringx

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/casekit/utils/namecase"
)

// isWordSeparator reports runes that always end a word
func isWordSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Words breaks s into words. Separators (underscore, hyphen, dot and
// whitespace) are dropped, the remaining parts are split at camel case humps.
// Example: "parseHTTP_request-id" -> ["parse", "HTTP", "request", "id"]
func Words(s string) []string {
	var words []string
	for _, span := range WordSpans(s) {
		words = append(words, span.String())
	}
	return words
}

// WordSpans is like Words but reports the position of every word in s
func WordSpans(s string) []namecase.Word {
	var spans []namecase.Word
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		// AsLower never fails
		parts, _ := namecase.Spans(namecase.LowerCamel, s[start:end])
		for _, p := range parts {
			spans = append(spans, namecase.Word{Name: s, Start: start + p.Start, End: start + p.End})
		}
		start = -1
	}

	for i, r := range s {
		switch {
		case isWordSeparator(r):
			flush(i)
		case start < 0:
			start = i
		}
	}
	flush(len(s))
	return spans
}

func lowerWords(s string) []string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// FreeForm is a naming case for input of unknown style. Split accepts any
// mix of separators and camel humps and lower-cases the words, Join puts
// spaces between words. SplitSpans reports the words in their original case.
var FreeForm namecase.NamingCase = freeForm{}

type freeForm struct{}

func (freeForm) Split(name string) ([]string, error) {
	return lowerWords(name), nil
}

func (freeForm) SplitSpans(name string) ([]namecase.Word, error) {
	return WordSpans(name), nil
}

func (freeForm) Join(words []string) string {
	return strings.Join(words, " ")
}

// ToStyle converts free-form s into the naming style nc.
// Words are lower-cased before joining so the style decides the casing.
func ToStyle(s string, nc namecase.NamingCase) string {
	return nc.Join(lowerWords(s))
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	return ToStyle(s, namecase.LowerUnderscore)
}

// ToConstantCase converts a string to CONSTANT_CASE.
// Example: "maxRetryCount" -> "MAX_RETRY_COUNT"
func ToConstantCase(s string) string {
	return ToStyle(s, namecase.UpperUnderscore)
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return ToStyle(s, namecase.LowerHyphen)
}

// ToCamelCase converts a string to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	return ToStyle(s, namecase.LowerCamel)
}

// ToPascalCase converts a string to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	return ToStyle(s, namecase.UpperCamel)
}

// ToTitleCase converts a string to Title Case with language independent rules.
// Example: "hello_world" -> "Hello World"
func ToTitleCase(s string) string {
	return ToTitleCaseIn(s, language.Und)
}

// ToTitleCaseIn converts a string to Title Case using the casing rules of tag
func ToTitleCaseIn(s string, tag language.Tag) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	return cases.Title(tag).String(strings.Join(words, " "))
}
