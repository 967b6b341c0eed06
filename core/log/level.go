// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels casekit filters on, with their names,
//              console tags and colors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-18 v0.2.0: Table driven levels, fatal/audit replaced by off, lipgloss colors

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff suppresses every entry when used as minimum level
	LevelOff
)

type levelInfo struct {
	name  string
	tag   string
	color lipgloss.TerminalColor
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", lipgloss.ANSIColor(7)},
	LevelDebug: {"debug", "DBG", lipgloss.ANSIColor(6)},
	LevelInfo:  {"info", "INF", lipgloss.ANSIColor(2)},
	LevelWarn:  {"warn", "WRN", lipgloss.ANSIColor(3)},
	LevelError: {"error", "ERR", lipgloss.ANSIColor(1)},
	LevelOff:   {"off", "OFF", lipgloss.NoColor{}},
}

// aliases accepted by ParseLevel next to the level names
var levelAliases = map[string]Level{
	"warning": LevelWarn,
	"err":     LevelError,
	"none":    LevelOff,
}

func (l Level) info() levelInfo {
	if l < LevelTrace || l > LevelOff {
		return levelInfo{"unknown", "???", lipgloss.NoColor{}}
	}
	return levels[l]
}

// String returns the lower-case level name
func (l Level) String() string {
	return l.info().name
}

// ShortString returns the three letter tag of the text formatter
func (l Level) ShortString() string {
	return l.info().tag
}

// Color returns the terminal color used by the console formatter
func (l Level) Color() lipgloss.TerminalColor {
	return l.info().color
}

// ShouldLog reports whether an entry at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l < LevelOff && l >= minLevel
}

// ParseLevel parses a level name or alias, ignoring case and surrounding space
func ParseLevel(level string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if info.name == key {
			return Level(l), nil
		}
	}
	if l, ok := levelAliases[key]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
