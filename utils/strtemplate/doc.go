// Package strtemplate renders string templates with named parameters.
//
// Package: strtemplate
// Title: String Templates with Case Filters
// Description: A small template language for generated names and snippets.
//              Parameters are written ${name} and may be piped through
//              filters, ${entity|upper-camel|plural}. Delimiters and the
//              escape character are configurable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Syntax
//
// With the default syntax a parameter starts at "${" and ends at the next
// "}". The body holds the parameter name followed by optional filters
// separated by "|". Whitespace around the name and the filters is ignored.
//
// The escape character "\" makes the following prefix literal, "\${x}"
// renders as "${x}". Two escapes render as one. An escape before anything
// else is kept as it is, so Windows paths need no doubling.
//
// Usage
//
//   tmpl, err := strtemplate.Parse("type ${entity|upper-camel} struct{}")
//   if err != nil {
//     return err
//   }
//   filters := strtemplate.DefaultFilters().Merge(strtemplate.CaseFilters(namecase.NewRegistry()))
//   out, err := tmpl.Execute(strtemplate.MapResolver{"entity": "user_profile"}, filters)
//   // out == "type UserProfile struct{}"
//
// Parsed templates are immutable and may be executed concurrently.
package strtemplate
