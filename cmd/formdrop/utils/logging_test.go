package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/formdrop-dev/formdrop/cmd/formdrop/config"
	"github.com/formdrop-dev/formdrop/internal/logging"
)

func TestSetupLoggingWithLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "batch.log")

	original := config.Global.LogFile
	config.Global.LogFile = path
	t.Cleanup(func() {
		config.Global.LogFile = original
		CleanupLogFile()
		logging.RestoreOutput()
	})

	if err := SetupLogging(); err != nil {
		t.Fatalf("SetupLogging() returned error: %v", err)
	}

	logging.Info("captured row line")
	logging.Success("captured success line")
	CleanupLogFile()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(raw)

	// Parent directory creation and INFO-level capture in one pass
	if !strings.Contains(content, "captured row line") {
		t.Errorf("log file missing INFO line:\n%s", content)
	}
	if !strings.Contains(content, "captured success line") {
		t.Errorf("log file missing SUCCESS line:\n%s", content)
	}
}

func TestSetupLoggingBadLogFilePath(t *testing.T) {
	// A directory path cannot be opened as a file
	dir := t.TempDir()

	original := config.Global.LogFile
	config.Global.LogFile = dir
	t.Cleanup(func() {
		config.Global.LogFile = original
		CleanupLogFile()
		logging.RestoreOutput()
	})

	if err := SetupLogging(); err == nil {
		t.Error("expected error for unopenable log file path, got nil")
	}
}
