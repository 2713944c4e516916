package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("visible", "code", 16)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %q", len(lines), buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["msg"] != "visible" {
		t.Fatalf("unexpected message: %v", record["msg"])
	}
	if ts, ok := record["time"].(string); !ok || !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC RFC3339 timestamp, got %v", record["time"])
	}
}

func TestNewConsoleLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("key press", "code", 30)
	if !strings.Contains(buf.String(), "msg=\"key press\"") {
		t.Fatalf("expected text handler output, got %q", buf.String())
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for bad level")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error for bad format")
	}
}

func TestOpenFileWritesDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keytrace.log")
	w, err := OpenFile(FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	logger, err := New(Options{Output: w})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("short write to key log")
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "short write to key log") {
		t.Fatalf("expected log line in file, got %q", data)
	}

	if _, err := OpenFile(FileOptions{}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
