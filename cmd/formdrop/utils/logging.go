// Package utils provides utility functions for the formdrop CLI.
// This file contains logging setup for CLI operations.
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/formdrop-dev/formdrop/cmd/formdrop/config"
	"github.com/formdrop-dev/formdrop/internal/logging"
)

// Log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists
func CleanupLogFile() {
	if logFileHandle != nil {
		logFileHandle.Close()
		logFileHandle = nil
	}
}

// SetupLogging configures CLI logging behavior based on environment and config.
// When --log-file is set, all logging is redirected to the file at INFO level
// so the per-row submission lines of a batch run are captured for later
// auditing instead of scrolling past on a terminal. Otherwise DEBUG=true
// enables debug output, --verbose shows per-row INFO/SUCCESS lines, and the
// default keeps the console quiet apart from errors.
func SetupLogging() error {
	// Setup log file redirection if --log-file was specified
	if config.Global.LogFile != "" {
		// Create parent directories if they don't exist
		logDir := filepath.Dir(config.Global.LogFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		// Open/create log file with append mode
		var err error
		logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
		}

		// Redirect all logging to the file
		logging.SetOutput(logFileHandle)

		// Capturing the per-row lines is the point of a log file, so file
		// logging runs at INFO even though the console default is quiet
		if os.Getenv("DEBUG") == "true" {
			logging.SetLevel("DEBUG")
		} else {
			logging.SetLevel("INFO")
		}
		return nil
	}

	// Check for DEBUG environment variable for debug logging
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return nil
	}

	if config.Global.Verbose {
		// Verbose mode shows per-row INFO/SUCCESS lines
		logging.RestoreOutput()
		logging.SetLevel("INFO")
		return nil
	}

	// Configure our application logging level first
	logging.SetLevel(config.Global.LogLevel)
	// Suppress debug/info logs by default (only show errors)
	logging.SuppressOutput()
	return nil
}
