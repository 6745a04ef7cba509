package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestInit(t *testing.T) {
	defer SetLevel(LevelWarn)

	Init(true)
	if GetLevel() != LevelDebug {
		t.Errorf("verbose Init: level = %v, want LevelDebug", GetLevel())
	}

	Init(false)
	if GetLevel() != LevelWarn {
		t.Errorf("non-verbose Init: level = %v, want LevelWarn", GetLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelWarn)

	SetLevel(LevelWarn)
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Error("debug/info messages should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Error("warn/error messages should be shown at warn level")
	}
}

func TestVerboseOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelWarn)

	SetLevel(LevelDebug)
	Debug("installing %s", "site.conf")

	out := buf.String()
	if !strings.Contains(out, "[DEBUG]") {
		t.Errorf("expected [DEBUG] prefix, got %q", out)
	}
	if !strings.Contains(out, "installing site.conf") {
		t.Errorf("expected formatted message, got %q", out)
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	LogError(nil, "should not log")
	if buf.Len() != 0 {
		t.Error("LogError(nil, ...) should not produce output")
	}
}
