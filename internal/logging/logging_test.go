package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      Level
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWritesJSONToConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Config{Level: InfoLevel, Console: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("selected", zap.Int("bindings", 18))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["msg"] != "selected" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
	if entry["bindings"] != float64(18) {
		t.Errorf("bindings = %v, want 18", entry["bindings"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "favbtn.log")
	var console bytes.Buffer
	logger, closeFn, err := New(Config{Level: DebugLevel, Console: &console, File: path, MaxSize: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("rebuilt")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"rebuilt"`) {
		t.Errorf("log file = %q", data)
	}
	if !strings.Contains(console.String(), `"msg":"rebuilt"`) {
		t.Error("console did not receive the entry")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() accepted an unknown level")
	}
}
