// Package error provides the structured error type used throughout casekit.
//
// Package: error
// Title: casekit Error Handling
// Description: Errors carry a code, a severity, the failing operation and
//              free-form details next to the usual message and cause. The
//              naming engine reports configuration problems and characters it
//              cannot classify through this type; the CLI turns the code into
//              an exit status.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Trimmed for casekit, errors.As based lookups
//
// Usage:
//   import ckerror "github.com/msto63/casekit/core/error"
//
//   err := ckerror.New("separator must not be empty").
//     WithCode(ckerror.CodeInvalidConfig).
//     WithOperation("namecase.NewSeparatorCase")
//
//   if ckerror.HasCode(err, ckerror.CodeInvalidConfig) {
//     // configuration problem
//   }
package error
