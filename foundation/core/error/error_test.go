// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping, code lookup and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests
// - 2026-10-14 v0.2.0: Tests for Is, chain lookups and exit codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("bundle unreadable")

	if err.Error() != "bundle unreadable" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bundle unreadable")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() is empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want TestNew", err.StackTrace()[0].Function)
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidPattern, SeverityLow},
		{CodeResourceUnavailable, SeverityHigh},
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

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := New("missing file").WithCode(CodeNotFound).WithDetail("path", "a.txt")
	wrapped := Wrap(base, "load resource")

	if wrapped.Error() != "load resource: missing file" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if wrapped.Code() != CodeNotFound {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeNotFound)
	}
	if wrapped.Details()["path"] != "a.txt" {
		t.Errorf("details not copied: %v", wrapped.Details())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false")
	}

	std := Wrap(fmt.Errorf("plain"), "context")
	if std.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", std.Code(), CodeUnknown)
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeConfigError)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	e := err.(*Error)
	if chainDepth(e) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(e), MaxErrorChainDepth+1)
	}
	if !HasCode(err, CodeConfigError) {
		t.Error("code lost on truncation")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("x").WithCode(CodeUnknownLocale))

	if !errors.Is(err, New("").WithCode(CodeUnknownLocale)) {
		t.Error("errors.Is by code = false, want true")
	}
	if errors.Is(err, New("").WithCode(CodeUnknownTimezone)) {
		t.Error("errors.Is with other code = true, want false")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("two CodeUnknown errors should not match")
	}
}

func TestChainLookups(t *testing.T) {
	inner := New("bad").WithCode(CodeInvalidConfig)
	err := fmt.Errorf("loading: %w", inner)

	if !HasCode(err, CodeInvalidConfig) {
		t.Error("HasCode through fmt wrap = false")
	}
	if GetCode(err) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityHigh {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
	if GetCode(fmt.Errorf("plain")) != CodeUnknown {
		t.Error("GetCode(plain) should be CodeUnknown")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(fmt.Errorf("eof"), "read bundle").
		WithCode(CodeResourceUnavailable).
		WithOperation("bundle.Data").
		WithRequestID("req-1").
		WithDetail("name", "greeting")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal: %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal: %v", uErr)
	}

	want := map[string]string{
		"code":       "RESOURCE_UNAVAILABLE",
		"operation":  "bundle.Data",
		"request_id": "req-1",
		"cause":      "eof",
		"severity":   "high",
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("json[%s] = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestStringSortsDetails(t *testing.T) {
	err := New("x").WithDetail("b", 2).WithDetail("a", 1)
	if !strings.Contains(err.String(), "Details: {a=1, b=2}") {
		t.Errorf("String() = %s", err.String())
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidPattern, "conversion", 2},
		{CodeUnknownTimezone, "locale", 2},
		{CodeNotFound, "resource", 3},
		{CodeInvalidConfig, "configuration", 4},
		{CodeInternal, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %s, want %s", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false")
			}
		})
	}

	if Code("BOGUS").IsValid() {
		t.Error(`Code("BOGUS").IsValid() = true`)
	}
}
