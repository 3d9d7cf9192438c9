// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context cloning, error logging and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests
// - 2026-10-14 v0.2.0: Adapted to synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")
	logger.Audit("always")

	lines := decodeLines(t, buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %s", len(lines), buf.String())
	}
	if lines[2]["level"] != "audit" {
		t.Errorf("last level = %v, want audit", lines[2]["level"])
	}
}

func TestContextIsCloned(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	child := base.WithName("regex").WithField("engine", "icu").WithRequestID("req-7")

	base.Info("from base")
	child.Info("from child", Fields{"pattern": `\d+`})

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if _, ok := lines[0]["engine"]; ok {
		t.Error("base logger picked up child field")
	}
	if lines[1]["engine"] != "icu" || lines[1]["pattern"] != `\d+` {
		t.Errorf("child fields = %v", lines[1])
	}
	if lines[1]["logger"] != "regex" || lines[1]["request_id"] != "req-7" {
		t.Errorf("child context = %v", lines[1])
	}
}

func TestWithNameNests(t *testing.T) {
	logger := Discard().WithName("sparrow").WithName("date")
	if logger.Name() != "sparrow.date" {
		t.Errorf("Name() = %q, want %q", logger.Name(), "sparrow.date")
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"low", mdwerror.New("bad pattern").WithCode(mdwerror.CodeInvalidPattern), "info"},
		{"high", mdwerror.New("no bundle").WithCode(mdwerror.CodeResourceUnavailable), "error"},
		{"medium", mdwerror.New("odd"), "warn"},
		{"plain", fmt.Errorf("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines", len(lines))
			}
			if lines[0]["level"] != tt.want {
				t.Errorf("level = %v, want %s", lines[0]["level"], tt.want)
			}
		})
	}
}

func TestLogErrorFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(mdwerror.New("unreadable").
		WithCode(mdwerror.CodeResourceUnavailable).
		WithOperation("bundle.Data").
		WithDetail("name", "about"))

	line := decodeLines(t, buf)[0]
	if line["error_code"] != "RESOURCE_UNAVAILABLE" {
		t.Errorf("error_code = %v", line["error_code"])
	}
	if line["error_operation"] != "bundle.Data" || line["error_name"] != "about" {
		t.Errorf("fields = %v", line)
	}
	if _, ok := line["error_details"]; !ok {
		t.Error("error_details missing")
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestCaller(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.WithCaller(0).Info("here")

	if !strings.Contains(buf.String(), "at=logger_test.go:") {
		t.Errorf("caller missing: %s", buf.String())
	}
}

func TestConcurrentWritesDoNotInterleave(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithField("n", i).Info("concurrent")
		}(i)
	}
	wg.Wait()

	if got := len(decodeLines(t, buf)); got != 20 {
		t.Errorf("got %d lines, want 20", got)
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("regex.extract").WithField("matches", 3)
	if timer.Stop() < 0 {
		t.Error("negative elapsed")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop should return 0")
	}

	failed := logger.StartTimer("bundle.read")
	failed.StopWithError(fmt.Errorf("boom"))

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["message"] != "regex.extract completed" || lines[0]["matches"] != float64(3) {
		t.Errorf("timer line = %v", lines[0])
	}
	if lines[1]["level"] != "error" || lines[1]["error"] != "boom" {
		t.Errorf("failed line = %v", lines[1])
	}
}
