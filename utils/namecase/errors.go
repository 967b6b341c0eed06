// File: errors.go
// Title: Naming Case Errors
// Description: Constructors and predicates for the two error kinds of the
//              engine: configuration errors and unclassifiable characters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package namecase

import (
	ckerror "github.com/msto63/casekit/core/error"
)

func configError(op, message string) error {
	return ckerror.New(message).
		WithCode(ckerror.CodeInvalidConfig).
		WithOperation(op)
}

func unclassifiable(r rune, index int, policy NonLetterPolicy) error {
	return ckerror.Newf("cannot classify character %q at index %d", r, index).
		WithCode(ckerror.CodeUnclassifiableCharacter).
		WithOperation("namecase.CamelCase.Split").
		WithDetail("character", string(r)).
		WithDetail("index", index).
		WithDetail("policy", policy.String())
}

// IsConfigError reports whether err is a configuration error
func IsConfigError(err error) bool {
	return ckerror.HasCode(err, ckerror.CodeInvalidConfig)
}

// IsUnclassifiable reports whether err was raised for a character that the
// non-letter policy refused to classify
func IsUnclassifiable(err error) bool {
	return ckerror.HasCode(err, ckerror.CodeUnclassifiableCharacter)
}
