// File: level_test.go
// Title: Level Tests
// Description: Tests for level parsing and filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests

package log

import (
	"testing"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{"warning", LevelWarn},
		{"err", LevelError},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	_, err := ParseLevel("loud")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("ParseLevel(loud) error = %v, want CodeInvalidConfig", err)
	}
}

func TestShouldLog(t *testing.T) {
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug passed info threshold")
	}
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error blocked by info threshold")
	}
	if !LevelAudit.ShouldLog(LevelFatal) {
		t.Error("audit must always log")
	}
}
