// File: format_test.go
// Title: Formatter Tests
// Description: Tests for the JSON, text, logfmt and console formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Sorted field output

package log

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	ckerror "github.com/msto63/casekit/core/error"
)

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "unknown style")
	entry.Timestamp = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	entry.Logger = "casekit"
	entry.Fields = Fields{"style": "lower-hypen", "b": 2, "a": 1}
	return entry
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}

	want := "09:30:00 [WRN] {casekit} unknown style [a=1 b=2 style=lower-hypen]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	entry := testEntry()
	entry.CorrelationID = "c-1"

	out, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatal(err)
	}

	want := `timestamp=2026-10-18T09:30:00Z level=warn message="unknown style" logger=casekit correlation_id=c-1 a=1 b=2 style="lower-hypen"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestJSONFormatterIncludesErrorDetails(t *testing.T) {
	entry := testEntry()
	entry.Error = ckerror.New("boom").WithCode(ckerror.CodeInvalidConfig)

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["error"] != "boom" {
		t.Errorf("error = %v", decoded["error"])
	}
	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %s", out)
	}
	if details["code"] != "INVALID_CONFIG" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "09:30:00 [WRN]") {
		t.Errorf("Format() = %q", out)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", name, err)
		}
		if f.String() != name {
			t.Errorf("ParseFormat(%q).String() = %q", name, f.String())
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
