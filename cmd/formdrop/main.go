// Package main provides the entry point for the formdrop CLI tool.
//
// This package implements the main executable for the spreadsheet-driven
// batch form submitter that reads rows from CSV and XLSX files and submits
// each row as an independent multipart/form-data POST request with bearer
// authentication.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: submit and preview commands over a shared root
//   - Handler Integration: Command execution with sheet reading and batch submission
//   - Flag Management: Global and command-specific configuration options
//   - Configuration Binding: CLI state management with environment fallbacks
//
// COMMAND CATEGORIES:
//   - Submit Command: Batch submission with per-row error isolation and reports
//   - Preview Command: Dry-run payload inspection without network activity
//
// INITIALIZATION FLOW:
// 1. Command structure setup linking submit and preview to the root
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to submission operations
// 4. Configuration validation and CLI state management
// 5. Command execution with proper error handling and exit codes
//
// The CLI follows kubectl-style patterns with consistent interfaces,
// comprehensive help text, and flag-over-environment precedence for
// credentials and field mapping.
package main

import (
	"os"

	"github.com/formdrop-dev/formdrop/cmd/formdrop/commands"
	"github.com/formdrop-dev/formdrop/cmd/formdrop/config"
	"github.com/formdrop-dev/formdrop/cmd/formdrop/handlers"
	internalconfig "github.com/formdrop-dev/formdrop/internal/config"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel,
		&config.Global.LogFile, &config.Global.Output, &config.Global.Verbose)

	// Setup submit command flags
	submitCmd := commands.GetSubmitCommand()
	commands.SetupSubmitFlags(submitCmd, &config.Submit.Endpoint, &config.Submit.Token,
		&config.Submit.Fields, &config.Submit.IDColumn, &config.Submit.AttachmentColumn,
		&config.Submit.AttachmentField, &config.Submit.StrictAttachments,
		&config.Submit.Timeout, &config.Submit.Workers, &config.Submit.Report,
		internalconfig.DefaultIDColumn, internalconfig.DefaultAttachmentField,
		internalconfig.DefaultTimeoutSeconds, internalconfig.DefaultWorkers)

	// Setup preview command flags
	previewCmd := commands.GetPreviewCommand()
	commands.SetupPreviewFlags(previewCmd, &config.Submit.Fields,
		&config.Submit.IDColumn, &config.Submit.AttachmentColumn,
		&config.Submit.AttachmentField, &config.Submit.StrictAttachments,
		internalconfig.DefaultIDColumn, internalconfig.DefaultAttachmentField)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	commands.GetSubmitCommand().RunE = handlers.HandleSubmit
	commands.GetPreviewCommand().RunE = handlers.HandlePreview
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
