package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "estbench.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("error initializing logging: %v", err)
	}
	defer Close()

	LogEvent("benchmark started with %d cases", 4)

	if err := Close(); err != nil {
		t.Fatalf("error closing log file: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("error reading log file: %v", err)
	}
	if !strings.Contains(string(data), "benchmark started with 4 cases") {
		t.Fatalf("log file missing event, got: %s", data)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("error initializing stdout-only logging: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("error closing: %v", err)
	}
}

func TestBuildRunMessage(t *testing.T) {
	msg := buildRunMessage("failure", "backend_simple", 2, "connection refused")
	for _, want := range []string{"[FAILURE]", "testCase=backend_simple", "run=2", "payload=connection refused"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestBuildRunMessageDefaults(t *testing.T) {
	msg := buildRunMessage("failure", "", 1, nil)
	if !strings.Contains(msg, "testCase=unknown") {
		t.Fatalf("blank test case should report unknown: %q", msg)
	}
	if !strings.Contains(msg, "payload=null") {
		t.Fatalf("nil payload should render as null: %q", msg)
	}
}

func TestFormatPayload(t *testing.T) {
	if got := formatPayload(map[string]int{"exitCode": 1}); got != `{"exitCode":1}` {
		t.Fatalf("formatPayload map = %q", got)
	}
	if got := formatPayload(""); got != `""` {
		t.Fatalf("formatPayload empty string = %q", got)
	}
	if got := formatPayload([]byte("raw")); got != "raw" {
		t.Fatalf("formatPayload bytes = %q", got)
	}
}
