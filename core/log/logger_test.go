// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, immutable context handling,
//              level filtering and error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-18 v0.2.0: Adapted to immutable loggers

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	ckerror "github.com/msto63/casekit/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: &buf,
		Name:   "test",
	})
	return logger, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %s", len(entries), buf.String())
	}
	if entries[1]["level"] != "error" {
		t.Errorf("last level = %v, want error", entries[1]["level"])
	}
}

func TestLevelOff(t *testing.T) {
	logger, buf := newBufferLogger(LevelOff)
	logger.Error("hidden")
	logger.LogError(errors.New("hidden"))

	if buf.Len() != 0 {
		t.Errorf("LevelOff wrote %q", buf.String())
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger, _ := newBufferLogger(LevelDebug)

	tests := []struct {
		level Level
		want  bool
	}{
		{LevelTrace, false},
		{LevelDebug, true},
		{LevelError, true},
		{LevelOff, false},
	}
	for _, tt := range tests {
		if got := logger.IsLevelEnabled(tt.level); got != tt.want {
			t.Errorf("IsLevelEnabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestWithFields(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo)
	child := parent.WithFields(Fields{"command": "convert", "version": "0.1.0"})

	child.Info("child")
	parent.Info("parent")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0]["command"] != "convert" || entries[0]["version"] != "0.1.0" {
		t.Errorf("child entry = %v", entries[0])
	}
	if _, ok := entries[1]["command"]; ok {
		t.Error("parent logger received child fields")
	}
}

func TestLevelNames(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		tag   string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelOff, "off", "OFF"},
		{Level(42), "unknown", "???"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.name)
		}
		if got := tt.level.ShortString(); got != tt.tag {
			t.Errorf("Level(%d).ShortString() = %q, want %q", int(tt.level), got, tt.tag)
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo)
	child := parent.WithField("style", "lower-camel").WithCorrelationID("abc")

	parent.Info("parent")
	child.Info("child", Fields{"word_count": 2})

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if _, ok := entries[0]["style"]; ok {
		t.Error("parent logger received child field")
	}
	if entries[1]["style"] != "lower-camel" {
		t.Errorf("child style = %v", entries[1]["style"])
	}
	if entries[1]["correlation_id"] != "abc" {
		t.Errorf("correlation_id = %v", entries[1]["correlation_id"])
	}
	if entries[1]["word_count"] != float64(2) {
		t.Errorf("word_count = %v", entries[1]["word_count"])
	}
	if entries[1]["logger"] != "test" {
		t.Errorf("logger = %v", entries[1]["logger"])
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name: "low severity logs at info",
			err: ckerror.New("cannot classify '1'").
				WithCode(ckerror.CodeUnclassifiableCharacter).
				WithDetail("index", 3),
			wantLevel: "info",
			wantCode:  "UNCLASSIFIABLE_CHARACTER",
		},
		{
			name:      "high severity logs at error",
			err:       ckerror.New("separator must not be empty").WithCode(ckerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "standard error",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries", len(entries))
			}
			if entries[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.wantLevel)
			}
			if tt.wantCode != nil && entries[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entries[0]["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) wrote output")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("convert").WithField("names", 3)
	timer.Stop()
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0]["operation"] != "convert" {
		t.Errorf("operation = %v", entries[0]["operation"])
	}
	if entries[0]["names"] != float64(3) {
		t.Errorf("names = %v", entries[0]["names"])
	}
}

func TestEnableCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, EnableCaller: true})
	logger.Info("where")

	entries := decodeLines(t, &buf)
	caller, _ := entries[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"off", LevelOff, false},
		{"none", LevelOff, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
