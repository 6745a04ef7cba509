package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// captureStdout captures stdout during function execution
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Also set color output to the same writer
	color.Output = w

	f()

	w.Close()
	os.Stdout = old
	color.Output = os.Stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestJSON(t *testing.T) {
	data := map[string]interface{}{
		"server_name": "example.com",
		"success":     true,
	}

	out := captureStdout(func() {
		_ = JSON(data)
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("JSON output is invalid: %v", err)
	}
	if result["server_name"] != "example.com" {
		t.Errorf("expected server_name example.com, got %v", result["server_name"])
	}
	if result["success"] != true {
		t.Errorf("expected success true, got %v", result["success"])
	}
}

func TestMessagePrefixes(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string, ...interface{})
		prefix string
	}{
		{"Success", Success, "✓ "},
		{"Error", Error, "✗ "},
		{"Warn", Warn, "! "},
		{"Info", Info, "→ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(func() {
				tt.fn("deployed %s", "example.com")
			})
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, out)
			}
			if !strings.Contains(out, "deployed example.com") {
				t.Errorf("formatted message missing: %q", out)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	out := captureStdout(Separator)
	if strings.TrimSpace(out) != strings.Repeat("-", 50) {
		t.Errorf("unexpected separator output: %q", out)
	}
}
