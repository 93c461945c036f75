package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// captureLogOutput is a test helper to capture log output from both loggers
func captureLogOutput(level string, fn func()) string {
	var buf bytes.Buffer

	// Save original loggers
	originalStdout := stdoutLogger
	originalStderr := stderrLogger

	// Create new loggers with buffer
	stdoutLogger = log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false, // Disable timestamps for easier testing
	})
	stderrLogger = log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
	})

	// Set the level on our test loggers
	SetLevel(level)

	// Execute function
	fn()

	// Restore original loggers
	stdoutLogger = originalStdout
	stderrLogger = originalStderr

	return strings.TrimSpace(buf.String())
}

// TestLogLevels tests that logging functions work at different levels
func TestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func()
		expected string
	}{
		{
			name: "Info level",
			logFunc: func() {
				Info("test info message")
			},
			expected: "test info message",
		},
		{
			name: "Warn level",
			logFunc: func() {
				Warn("test warn message")
			},
			expected: "test warn message",
		},
		{
			name: "Error level",
			logFunc: func() {
				Error("test error message")
			},
			expected: "test error message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput("DEBUG", tt.logFunc)

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.expected, output)
			}
		})
	}
}

// TestSetLevel tests that log level filtering works correctly
func TestSetLevel(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		logFunc      func()
		shouldOutput bool
	}{
		{
			name:  "Info logged at INFO level",
			level: "INFO",
			logFunc: func() {
				Info("info message")
			},
			shouldOutput: true,
		},
		{
			name:  "Debug filtered at INFO level",
			level: "INFO",
			logFunc: func() {
				Debug("debug message")
			},
			shouldOutput: false,
		},
		{
			name:  "Error logged at WARN level",
			level: "WARN",
			logFunc: func() {
				Error("error message")
			},
			shouldOutput: true,
		},
		{
			name:  "Info filtered at ERROR level",
			level: "ERROR",
			logFunc: func() {
				Info("info message")
			},
			shouldOutput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.level, tt.logFunc)

			if tt.shouldOutput && output == "" {
				t.Error("Expected output but got none")
			}
			if !tt.shouldOutput && output != "" {
				t.Errorf("Expected no output but got: %s", output)
			}
		})
	}
}

// TestValidLogLevels tests the canonical level set used by flag validation
func TestValidLogLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		valid bool
	}{
		{name: "debug_valid", level: "DEBUG", valid: true},
		{name: "info_valid", level: "INFO", valid: true},
		{name: "warn_valid", level: "WARN", valid: true},
		{name: "error_valid", level: "ERROR", valid: true},
		{name: "lowercase_invalid", level: "debug", valid: false},
		{name: "empty_invalid", level: "", valid: false},
		{name: "unknown_invalid", level: "TRACE", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidLogLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidLogLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}

			err := ValidateLogLevel(tt.level)
			if tt.valid && err != nil {
				t.Errorf("ValidateLogLevel(%q) returned error: %v", tt.level, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("ValidateLogLevel(%q) expected error, got nil", tt.level)
			}
		})
	}
}

// TestSetOutputToFile tests that file redirection captures all log levels
// in one file, including the SUCCESS pseudo-level
func TestSetOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}

	SetOutput(f)
	defer RestoreOutput()
	SetLevel("INFO")

	Info("file info line")
	Error("file error line")
	Success("file success line")

	if err := f.Close(); err != nil {
		t.Fatalf("failed to close log file: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(raw)

	for _, want := range []string{"file info line", "file error line", "file success line"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q:\n%s", want, content)
		}
	}

	if !IsConfiguredByCLI() {
		t.Error("SetOutput must mark logging as CLI-configured")
	}
}

// TestSetOutputNilSuppresses tests that a nil output silences all levels
func TestSetOutputNilSuppresses(t *testing.T) {
	output := captureLogOutput("INFO", func() {
		SetOutput(nil)
		Info("should not appear")
		Error("should not appear either")
	})
	defer RestoreOutput()

	if output != "" {
		t.Errorf("expected no output after SetOutput(nil), got: %s", output)
	}
}

// TestFormatRunID tests context-aware run ID truncation
func TestFormatRunID(t *testing.T) {
	const fullID = "0b51748a-2c4e-4b8f-9a6d-51f4f8e21c77"

	// Non-debug levels show the short form
	SetLevel("INFO")
	if got := FormatRunID(fullID); got != "0b51748a" {
		t.Errorf("FormatRunID at INFO = %q, want %q", got, "0b51748a")
	}

	// Debug level preserves the full ID for traceability
	SetLevel("DEBUG")
	if got := FormatRunID(fullID); got != fullID {
		t.Errorf("FormatRunID at DEBUG = %q, want full ID %q", got, fullID)
	}

	// Short IDs pass through unchanged
	SetLevel("INFO")
	if got := FormatRunID("abc"); got != "abc" {
		t.Errorf("FormatRunID(short) = %q, want %q", got, "abc")
	}
}
