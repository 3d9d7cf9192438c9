// File: format_test.go
// Title: Formatter Tests
// Description: Tests for text, logfmt, console and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests
// - 2026-10-14 v0.2.0: Deterministic field order assertions

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleEntry() *Entry {
	e := NewEntry(LevelInfo, "formatted")
	e.Timestamp = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	e.Logger = "sparrow"
	e.RequestID = "r1"
	e.Fields = Fields{"b": 2, "a": "x y"}
	return e
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(sampleEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "09:30:00 [INF] {sparrow} (req=r1) formatted [a=x y b=2]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := sampleEntry()
	e.Error = errors.New("bad")
	out, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `timestamp=2026-10-14T09:30:00Z level=info message=formatted logger=sparrow request_id=r1 a="x y" b=2 error=bad` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"date", "date"},
		{"", `""`},
		{"two words", `"two words"`},
		{"k=v", `"k=v"`},
		{`say "hi"`, `"say \"hi\""`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak", `"line\nbreak"`},
		{"de_DE", "de_DE"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := logfmtValue(tt.in); got != tt.want {
				t.Errorf("logfmtValue(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(sampleEntry())
	if !strings.HasPrefix(string(out), LevelInfo.Color()) || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("colored output = %q", out)
	}

	f.DisableColors = true
	plain, _ := f.Format(sampleEntry())
	if strings.Contains(string(plain), "\033[") {
		t.Errorf("DisableColors output = %q", plain)
	}
}

func TestJSONFormatterErrorField(t *testing.T) {
	e := sampleEntry()
	e.Fields["cause"] = errors.New("inner")
	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"cause":"inner"`) {
		t.Errorf("error field not stringified: %s", out)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" Logfmt ", FormatLogfmt, false},
		{"", FormatText, false},
		{"console", FormatConsole, false},
		{"xml", FormatText, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
}
