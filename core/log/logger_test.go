// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level parsing, level filtering, context fields and
//              hiext error integration of the logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	hixerror "github.com/msto63/hiext/core/error"
)

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

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"off", LevelOff, false},
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

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("text"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %s", len(lines), buf.String())
	}
	if lines[0]["level"] != "warn" || lines[0]["message"] != "shown" {
		t.Errorf("unexpected first line %v", lines[0])
	}
}

func TestFieldsAndName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf, Name: "markup"}).
		WithField("renderer", "html")

	logger.Debug("parsed", Field("bytes", 12))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line["logger"] != "markup" {
		t.Errorf("logger = %v, want markup", line["logger"])
	}
	if line["renderer"] != "html" {
		t.Errorf("renderer = %v, want html", line["renderer"])
	}
	if line["bytes"] != float64(12) {
		t.Errorf("bytes = %v, want 12", line["bytes"])
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Output: &buf})

	logger.LogError(nil)
	logger.LogError(hixerror.OutOfRangeError("stringx.CharAt", 9, 3))
	logger.LogError(errors.New("plain"))

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[0]["error_code"] != "OUT_OF_RANGE" {
		t.Errorf("unexpected coded error line %v", lines[0])
	}
	if lines[0]["error_operation"] != "stringx.CharAt" {
		t.Errorf("error_operation = %v", lines[0]["error_operation"])
	}
	if lines[1]["level"] != "error" || lines[1]["error"] != "plain" {
		t.Errorf("unexpected plain error line %v", lines[1])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatConsole, Output: &buf, NoColor: true})
	logger.Info("hello console")

	if !strings.Contains(buf.String(), "hello console") {
		t.Errorf("console output %q lacks message", buf.String())
	}
}

func TestNopAndDefault(t *testing.T) {
	nop := Nop()
	if nop.IsLevelEnabled(LevelError) {
		t.Error("Nop logger should have every level disabled")
	}
	nop.Error("discarded")

	prev := GetDefault()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Output: &buf}))
	SetDefault(nil)
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger output %q lacks message", buf.String())
	}
}
