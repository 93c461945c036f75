// Package commands provides the complete command tree implementation for formdrop.
//
// This package defines the command structure for the spreadsheet-driven batch
// form submitter. Commands are organized around the two things operators do:
// submit a sheet for real, and preview what a sheet would send.
//
// COMMAND STRUCTURE:
//   - submit: Read a sheet and POST one multipart request per row
//   - preview: Dry run — build and display payloads without network calls
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "formdrop",
	Short: "CLI tool for submitting spreadsheet rows as multipart form requests",
	Long: `formdrop is a command-line tool that reads rows from a CSV or XLSX
file and submits each row as an independent multipart/form-data POST
request with bearer authentication.

Each row becomes one request: scalar columns map to form fields and an
optional column supplies a local file path to attach as a binary part.
A failed row is recorded and reported, never aborting the rest of the
batch.`,
	SilenceUsage: true,
	Example: `  # Submit every row of a CSV file
  formdrop submit applicants.csv --endpoint=https://api.example.com/apply \
    --token=$TOKEN --fields=id,name,email

  # Attach the file referenced by the resume column
  formdrop submit applicants.xlsx --fields=id,name,email \
    --attachment-column=resume

  # Preview payloads without sending anything
  formdrop preview applicants.csv --fields=id,name,email

  # Fail rows whose attachment file is missing instead of skipping it
  formdrop submit applicants.csv --fields=id,name --attachment-column=resume \
    --strict-attachments

  # Submit with 4 concurrent workers and export a failure report
  formdrop submit applicants.csv --fields=id,name --workers=4 \
    --report=failures.csv

  # Output results in JSON format
  formdrop -o json submit applicants.csv --fields=id,name`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(submitCmd)
	RootCmd.AddCommand(previewCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr, logFilePtr *string,
	outputPtr *string, verbosePtr *bool) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().StringVar(logFilePtr, "log-file", "",
		"Write logs to this file instead of the terminal (captures per-row lines)")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
}
