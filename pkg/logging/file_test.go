package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, format Format, level Level) (*FileLogger, string) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "lsdups-logging-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	logPath := filepath.Join(tempDir, "test.log")
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:   logPath,
		Format: format,
		Level:  level,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	return logger, logPath
}

func TestNewFileLogger(t *testing.T) {
	_, logPath := newTestLogger(t, FormatText, InfoLevel)

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "lsdups-logging-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	logPath := filepath.Join(tempDir, "nested", "dir", "test.log")
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:   logPath,
		Format: FormatText,
		Level:  InfoLevel,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Dir(logPath)); os.IsNotExist(err) {
		t.Error("log directory was not created")
	}
}

func TestFileLoggerTextFormat(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatText, DebugLevel)

	logger.Info(context.Background(), "scan started", Fields{"root": "/data"})
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	line := string(data)
	if !strings.Contains(line, "[INFO]") {
		t.Errorf("log line missing level: %s", line)
	}
	if !strings.Contains(line, "scan started") {
		t.Errorf("log line missing message: %s", line)
	}
	if !strings.Contains(line, "root=/data") {
		t.Errorf("log line missing field: %s", line)
	}
}

func TestFileLoggerJSONFormat(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatJSON, DebugLevel)

	logger.Warn(context.Background(), "entry skipped", Fields{"path": "/x/locked"})
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
	if entry["message"] != "entry skipped" {
		t.Errorf("message = %v, want 'entry skipped'", entry["message"])
	}
	if entry["path"] != "/x/locked" {
		t.Errorf("path = %v, want /x/locked", entry["path"])
	}
}

func TestFileLoggerLevelFiltering(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatText, WarnLevel)

	logger.Debug(context.Background(), "debug msg", nil)
	logger.Info(context.Background(), "info msg", nil)
	logger.Warn(context.Background(), "warn msg", nil)
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	content := string(data)
	if strings.Contains(content, "debug msg") || strings.Contains(content, "info msg") {
		t.Errorf("messages below warn level were written: %s", content)
	}
	if !strings.Contains(content, "warn msg") {
		t.Errorf("warn message missing: %s", content)
	}
}

func TestFileLoggerWithFields(t *testing.T) {
	logger, logPath := newTestLogger(t, FormatJSON, DebugLevel)

	scoped := logger.WithFields(Fields{"operation_id": "op-1"})
	scoped.Info(context.Background(), "grouping complete", Fields{"groups": 4})
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["operation_id"] != "op-1" {
		t.Errorf("operation_id = %v, want op-1", entry["operation_id"])
	}
	if entry["groups"] != float64(4) {
		t.Errorf("groups = %v, want 4", entry["groups"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%s) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNullLogger(t *testing.T) {
	logger := NewNullLogger()

	// All methods are no-ops and must not panic
	logger.Debug(context.Background(), "msg", nil)
	logger.Info(context.Background(), "msg", Fields{"k": "v"})
	logger.Warn(context.Background(), "msg", nil)
	logger.Error(context.Background(), "msg", nil, nil)

	if logger.WithFields(Fields{"k": "v"}) != logger {
		t.Error("WithFields() should return the same null logger")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
