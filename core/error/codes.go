// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across casekit. Codes classify
//              failures of the naming engine, the template parser and the
//              configuration layer and map them onto CLI exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Reduced to casekit codes, HTTP mapping replaced by exit codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError    Code = "CONFIG_ERROR"
	CodeMissingConfig  Code = "MISSING_CONFIG"
	CodeInvalidConfig  Code = "INVALID_CONFIG"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Naming and templates
	CodeUnclassifiableCharacter Code = "UNCLASSIFIABLE_CHARACTER"
	CodeTemplateSyntax          Code = "TEMPLATE_SYNTAX"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeDuplicateEntry,
		CodeUnclassifiableCharacter, CodeTemplateSyntax:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeDuplicateEntry:
		return "configuration"
	case CodeUnclassifiableCharacter, CodeInvalidInput:
		return "input"
	case CodeTemplateSyntax:
		return "template"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// 2 is reserved for usage and configuration problems, 3 for rejected input.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "configuration":
		return 2
	case "input", "template":
		return 3
	}
	if c == CodeNotFound {
		return 2
	}
	return 1
}
