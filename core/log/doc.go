// Package log provides structured logging for casekit.
//
// Package: log
// Title: casekit Structured Logging
// Description: Leveled, structured logging with JSON, text, logfmt and
//              colored console output. Loggers are immutable: every With*
//              call returns a configured copy, so a logger can be shared by
//              the CLI commands and the preview without locking. Errors from
//              core/error are logged with their code and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Console colors via lipgloss, async mode removed
//
// Usage:
//   import cklog "github.com/msto63/casekit/core/log"
//
//   logger := cklog.NewWithConfig(cklog.Config{
//     Level:  cklog.LevelDebug,
//     Format: cklog.FormatConsole,
//     Output: os.Stderr,
//     Name:   "casekit",
//   }).WithCorrelationID(uuid.NewString())
//
//   logger.Debug("converted", cklog.Fields{"from": "lower-camel", "to": "upper-underscore"})
//   logger.LogError(err)
//
//   timer := logger.StartTimer("convert")
//   // ... work
//   timer.Stop()
package log
