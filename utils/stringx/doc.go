// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string helpers shared by the casekit
//              packages and free-form case conversion built on namecase.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Case conversion delegates to namecase, random helpers removed

// Package stringx provides extended string operations for casekit.
//
// Overview
//
// The package has two halves. The first covers checks and layout helpers
// used across the module:
//
//   stringx.IsBlank("  \t")               // true
//   stringx.FirstNonBlank("", " ", "x")   // "x"
//   stringx.Truncate("Hello World", 8, "...") // "Hello..."
//   stringx.PadRight("id", 6, '.')        // "id...."
//
// The second converts free-form text between naming styles. Unlike the
// strategies in namecase, which parse one known convention, these helpers
// accept input that mixes separators and camel humps:
//
//   stringx.Words("parseHTTP_request-id") // ["parse" "HTTP" "request" "id"]
//   stringx.ToSnakeCase("HTTPServer")     // "http_server"
//   stringx.ToCamelCase("user-id")        // "userId"
//   stringx.ToConstantCase("maxRetries")  // "MAX_RETRIES"
//   stringx.ToTitleCase("hello_world")    // "Hello World"
//
// ToStyle accepts any namecase.NamingCase, so styles loaded from
// configuration work the same way as the built-in ones.
//
// Unicode
//
// Truncate and PadRight count runes, not bytes. Title casing uses
// golang.org/x/text/cases; ToTitleCaseIn applies language specific rules.
package stringx
