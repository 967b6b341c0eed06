// File: styles.go
// Title: Pre-built Styles
// Description: Ready-to-use strategies for the common naming conventions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package namecase

// Pre-built styles. They are immutable and safe for concurrent use.
var (
	// LowerCamel joins as "firstSecond"
	LowerCamel NamingCase = mustCamel(CamelOptions{NonLetters: AsLower})
	// UpperCamel joins as "FirstSecond"
	UpperCamel NamingCase = mustCamel(CamelOptions{Capitalized: true, NonLetters: AsLower})

	// LowerHyphen joins as "first-second"
	LowerHyphen NamingCase = mustSeparator(SeparatorOptions{Separator: "-", Words: Lower})
	// UpperHyphen joins as "FIRST-SECOND"
	UpperHyphen NamingCase = mustSeparator(SeparatorOptions{Separator: "-", Words: Upper})

	// LowerUnderscore joins as "first_second"
	LowerUnderscore NamingCase = mustSeparator(SeparatorOptions{Separator: "_", Words: Lower})
	// UpperUnderscore joins as "FIRST_SECOND"
	UpperUnderscore NamingCase = mustSeparator(SeparatorOptions{Separator: "_", Words: Upper})

	// LowerDot joins as "first.second"
	LowerDot NamingCase = mustSeparator(SeparatorOptions{Separator: ".", Words: Lower})
	// TitleSpace joins as "First Second"
	TitleSpace NamingCase = mustSeparator(SeparatorOptions{Separator: " ", Words: Title})
)

// builtins maps the registry names of the pre-built styles
var builtins = map[string]NamingCase{
	"lower-camel":      LowerCamel,
	"upper-camel":      UpperCamel,
	"lower-hyphen":     LowerHyphen,
	"upper-hyphen":     UpperHyphen,
	"lower-underscore": LowerUnderscore,
	"upper-underscore": UpperUnderscore,
	"lower-dot":        LowerDot,
	"title-space":      TitleSpace,
}

func mustCamel(opts CamelOptions) *CamelCase {
	c, err := NewCamelCase(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func mustSeparator(opts SeparatorOptions) *SeparatorCase {
	s, err := NewSeparatorCase(opts)
	if err != nil {
		panic(err)
	}
	return s
}
