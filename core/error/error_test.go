// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              errors.As based lookup helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Adapted to the reduced error type

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the calling test", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("bad character %q at %d", 'x', 3)
	if err.Error() != `bad character 'x' at 3` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{name: "wrap nil error", err: nil, message: "ctx", wantNil: true},
		{
			name:     "wrap standard error",
			err:      errors.New("boom"),
			message:  "loading styles",
			wantMsg:  "loading styles: boom",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap casekit error keeps code",
			err:      New("empty separator").WithCode(CodeInvalidConfig),
			message:  "style constant",
			wantMsg:  "style constant: empty separator",
			wantCode: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("bad").WithDetail("index", 4)
	outer := Wrap(inner, "outer")

	if v, ok := outer.Detail("index"); !ok || v != 4 {
		t.Errorf("Detail(index) = %v, %v; want 4, true", v, ok)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidConfig, SeverityHigh},
		{CodeUnclassifiableCharacter, SeverityLow},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeNotFound)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("a", 1)
	details := err.Details()
	details["a"] = 2

	if v, _ := err.Detail("a"); v != 1 {
		t.Errorf("Details() leaked internal map, detail a = %v", v)
	}
}

func TestHasCode(t *testing.T) {
	base := New("bad char").WithCode(CodeUnclassifiableCharacter)
	wrapped := Wrap(base, "convert").WithCode(CodeInvalidInput)
	foreign := fmt.Errorf("cli: %w", wrapped)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", base, CodeUnclassifiableCharacter, true},
		{"outer code", wrapped, CodeInvalidInput, true},
		{"inner code through wrap", wrapped, CodeUnclassifiableCharacter, true},
		{"through fmt.Errorf", foreign, CodeUnclassifiableCharacter, true},
		{"missing", base, CodeNotFound, false},
		{"standard error", errors.New("x"), CodeUnknown, false},
		{"nil", nil, CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New("x").WithCode(CodeTemplateSyntax))

	if got := GetCode(err); got != CodeTemplateSyntax {
		t.Errorf("GetCode() = %v", got)
	}
	if got := GetSeverity(err); got != SeverityLow {
		t.Errorf("GetSeverity() = %v", got)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v", got)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v", got)
	}
}

func TestString(t *testing.T) {
	err := New("cannot classify").
		WithCode(CodeUnclassifiableCharacter).
		WithOperation("namecase.CamelCase.Split").
		WithDetail("index", 2).
		WithDetail("character", "1")

	s := err.String()
	for _, want := range []string{
		"Error: cannot classify",
		"Code: UNCLASSIFIABLE_CHARACTER",
		"Severity: low",
		"Operation: namecase.CamelCase.Split",
		"Details: {character=1, index=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "outer").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("file", "casekit.toml")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}

	checks := map[string]interface{}{
		"message":   "outer",
		"code":      "CONFIG_ERROR",
		"severity":  "high",
		"operation": "config.Load",
		"cause":     "root",
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}
