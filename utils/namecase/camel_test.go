// File: camel_test.go
// Title: Camel Case Strategy Tests
// Description: Tests for camel case splitting, joining and non-letter policies.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package namecase

import (
	"reflect"
	"strings"
	"testing"

	ckerror "github.com/msto63/casekit/core/error"
)

func newCamel(t *testing.T, opts CamelOptions) *CamelCase {
	t.Helper()
	c, err := NewCamelCase(opts)
	if err != nil {
		t.Fatalf("NewCamelCase(%+v) failed: %v", opts, err)
	}
	return c
}

func TestCamelCaseSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{""}},
		{"single lower", "a", []string{"a"}},
		{"single upper", "A", []string{"A"}},
		{"one word", "first", []string{"first"}},
		{"capitalized word", "First", []string{"First"}},
		{"lower camel", "firstSecond", []string{"first", "Second"}},
		{"upper camel", "FirstSecond", []string{"First", "Second"}},
		{"three words", "firstSecondThird", []string{"first", "Second", "Third"}},
		{"lower then upper", "aA", []string{"a", "A"}},
		{"run of two", "AAa", []string{"A", "Aa"}},
		{"run of three", "AAAa", []string{"AA", "Aa"}},
		{"leading acronym", "IPAddress", []string{"IP", "Address"}},
		{"trailing acronym", "serverURL", []string{"server", "URL"}},
		{"inner acronym", "parseHTTPRequest", []string{"parse", "HTTP", "Request"}},
		{"all upper", "HTTP", []string{"HTTP"}},
		{"digits join lower", "version2Api", []string{"version2", "Api"}},
		{"digit before acronym", "ipv4ADDR", []string{"ipv4", "ADDR"}},
		{"underscore is lower", "first_Second", []string{"first_", "Second"}},
		{"non ascii is lower", "größeWert", []string{"größe", "Wert"}},
	}

	c := newCamel(t, CamelOptions{NonLetters: AsLower})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCamelCaseSplitPolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   NonLetterPolicy
		input    string
		expected []string
	}{
		{"as lower digits", AsLower, "a1B", []string{"a1", "B"}},
		{"as upper digits", AsUpper, "a1B", []string{"a", "1B"}},
		{"as upper run", AsUpper, "A1b", []string{"A", "1b"}},
		{"independent digits", Independent, "a1B", []string{"a", "1", "B"}},
		{"independent run", Independent, "abc123def", []string{"abc", "123", "def"}},
		{"independent leading", Independent, "42answer", []string{"42", "answer"}},
		{"independent acronym", Independent, "AB1c", []string{"AB", "1", "c"}},
		{"independent non ascii", Independent, "größe", []string{"gr", "öß", "e"}},
		{"independent only", Independent, "123", []string{"123"}},
		{"reject letters only", Reject, "firstSecond", []string{"first", "Second"}},
		{"reject single char", Reject, "1", []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCamel(t, CamelOptions{NonLetters: tt.policy})
			got, err := c.Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q) with %s = %q; want %q", tt.input, tt.policy, got, tt.expected)
			}
		})
	}
}

func TestCamelCaseSplitReject(t *testing.T) {
	tests := []struct {
		input     string
		character string
		index     int
	}{
		{"first2nd", "2", 5},
		{"_private", "_", 0},
		{"größe", "ö", 2},
	}

	c := newCamel(t, CamelOptions{NonLetters: Reject})
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			words, err := c.Split(tt.input)
			if err == nil {
				t.Fatalf("Split(%q) = %q; want error", tt.input, words)
			}
			if !IsUnclassifiable(err) {
				t.Fatalf("Split(%q) error code = %s; want %s",
					tt.input, ckerror.GetCode(err), ckerror.CodeUnclassifiableCharacter)
			}
			if IsConfigError(err) {
				t.Error("unclassifiable error should not be a configuration error")
			}

			ckErr := err.(*ckerror.Error)
			if got, _ := ckErr.Detail("character"); got != tt.character {
				t.Errorf("character detail = %v; want %q", got, tt.character)
			}
			if got, _ := ckErr.Detail("index"); got != tt.index {
				t.Errorf("index detail = %v; want %d", got, tt.index)
			}
			if got, _ := ckErr.Detail("policy"); got != "reject" {
				t.Errorf("policy detail = %v; want reject", got)
			}
		})
	}
}

func TestCamelCaseSplitKeepsName(t *testing.T) {
	c := newCamel(t, CamelOptions{})
	for _, name := range []string{"", "x", "lower", "Upper", "ALLCAPS"} {
		words, err := c.Split(name)
		if err != nil {
			t.Fatalf("Split(%q) returned error: %v", name, err)
		}
		if len(words) != 1 || words[0] != name {
			t.Errorf("Split(%q) = %q; want the name itself", name, words)
		}
	}
}

func TestCamelCaseSplitCoversName(t *testing.T) {
	inputs := []string{"firstSecond", "IPAddress", "AAAa", "parseHTTPRequest", "a1B2c3", "größeWert"}
	for _, policy := range []NonLetterPolicy{AsLower, AsUpper, Independent} {
		c := newCamel(t, CamelOptions{NonLetters: policy})
		for _, input := range inputs {
			words, err := c.Split(input)
			if err != nil {
				t.Fatalf("Split(%q) returned error: %v", input, err)
			}
			if got := strings.Join(words, ""); got != input {
				t.Errorf("%s: words of %q concatenate to %q", policy, input, got)
			}
			for i, w := range words {
				if w == "" {
					t.Errorf("%s: Split(%q) has empty word at %d", policy, input, i)
				}
			}
		}
	}
}

func TestCamelCaseSplitSpans(t *testing.T) {
	c := newCamel(t, CamelOptions{})
	spans, err := c.SplitSpans("IPAddress")
	if err != nil {
		t.Fatalf("SplitSpans returned error: %v", err)
	}

	expected := []struct{ start, end int }{{0, 2}, {2, 9}}
	if len(spans) != len(expected) {
		t.Fatalf("SplitSpans returned %d words; want %d", len(spans), len(expected))
	}
	for i, e := range expected {
		if spans[i].Start != e.start || spans[i].End != e.end {
			t.Errorf("span %d = [%d:%d]; want [%d:%d]", i, spans[i].Start, spans[i].End, e.start, e.end)
		}
	}
	if spans[1].String() != "Address" {
		t.Errorf("span 1 text = %q; want %q", spans[1].String(), "Address")
	}
}

func TestCamelCaseJoin(t *testing.T) {
	tests := []struct {
		name        string
		capitalized bool
		words       []string
		expected    string
	}{
		{"empty list", false, nil, ""},
		{"lower", false, []string{"first", "second"}, "firstSecond"},
		{"lower from capitalized", false, []string{"First", "Second"}, "firstSecond"},
		{"lower from upper", false, []string{"FIRST", "SECOND"}, "FIRSTSECOND"},
		{"lower keeps acronym", false, []string{"IP", "address"}, "IPAddress"},
		{"lower single letter", false, []string{"A", "b"}, "aB"},
		{"upper", true, []string{"first", "second"}, "FirstSecond"},
		{"upper acronym", true, []string{"http", "server"}, "HttpServer"},
		{"empty words", true, []string{"", "a", ""}, "A"},
		{"non ascii", true, []string{"über", "größe"}, "ÜberGröße"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCamel(t, CamelOptions{Capitalized: tt.capitalized})
			if got := c.Join(tt.words); got != tt.expected {
				t.Errorf("Join(%q) = %q; want %q", tt.words, got, tt.expected)
			}
		})
	}
}

func TestCamelCaseJoinHandler(t *testing.T) {
	var indexes []int
	c := newCamel(t, CamelOptions{
		Capitalized: true,
		Words: func(index int, word string) string {
			indexes = append(indexes, index)
			if index == 0 {
				return strings.ToUpper(word)
			}
			return word
		},
	})

	if got := c.Join([]string{"id", "value", "map"}); got != "IDValueMap" {
		t.Errorf("Join() = %q; want %q", got, "IDValueMap")
	}
	if !reflect.DeepEqual(indexes, []int{0, 1, 2}) {
		t.Errorf("handler indexes = %v; want [0 1 2]", indexes)
	}
}

func TestNewCamelCaseInvalidPolicy(t *testing.T) {
	_, err := NewCamelCase(CamelOptions{NonLetters: NonLetterPolicy(42)})
	if err == nil {
		t.Fatal("NewCamelCase with invalid policy should fail")
	}
	if !IsConfigError(err) {
		t.Errorf("error code = %s; want %s", ckerror.GetCode(err), ckerror.CodeInvalidConfig)
	}
}

func TestNonLetterPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected NonLetterPolicy
	}{
		{"as_lower", AsLower},
		{"AS_UPPER", AsUpper},
		{"as-upper", AsUpper},
		{" independent ", Independent},
		{"reject", Reject},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNonLetterPolicy(tt.input)
			if err != nil {
				t.Fatalf("ParseNonLetterPolicy(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseNonLetterPolicy(%q) = %s; want %s", tt.input, got, tt.expected)
			}
			if round, _ := ParseNonLetterPolicy(got.String()); round != got {
				t.Errorf("String() of %s does not parse back", got)
			}
		})
	}

	if _, err := ParseNonLetterPolicy("sometimes"); !IsConfigError(err) {
		t.Errorf("ParseNonLetterPolicy(%q) error = %v; want configuration error", "sometimes", err)
	}
	if got := NonLetterPolicy(9).String(); got != "NonLetterPolicy(9)" {
		t.Errorf("String() of unknown policy = %q", got)
	}
}
