// Package namecase converts identifiers between naming conventions.
//
// Package: namecase
// Title: Naming Case Engine
// Description: A NamingCase splits a name into words and joins words back
//              into a name. Two strategies cover the common conventions:
//              CamelCase cuts at letter-case transitions and SeparatorCase
//              cuts at a literal separator. Convert splits with one strategy
//              and joins with another.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Splitting rules
//
// CamelCase classifies ASCII letters as lower or upper case. Everything else
// is a non-letter and is classified by the NonLetterPolicy. Boundaries are
// placed before an upper-case letter that follows a lower-case one, and
// before the last letter of an upper-case run that is followed by lower case:
//
//   "firstSecond" => ["first", "Second"]
//   "IPAddress"   => ["IP", "Address"]
//   "AAAa"        => ["AA", "Aa"]
//
// SeparatorCase cuts at every occurrence of its separator. A trailing
// separator produces a trailing empty word so nothing is lost:
//
//   "a-b-" => ["a", "b", ""]
//
// A name that cannot be split (one rune, no transition, no separator) is
// returned as the only word.
//
// Usage
//
//   out, err := namecase.Convert("firstSecond", namecase.LowerCamel, namecase.UpperUnderscore)
//   // out == "FIRST_SECOND"
//
//   dotted, err := namecase.NewSeparatorCase(namecase.SeparatorOptions{
//     Separator: ".",
//     Words:     namecase.Lower,
//   })
//
// Strategies are immutable after construction and can be shared between
// goroutines without synchronization.
package namecase
