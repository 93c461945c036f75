// Package handlers provides command handler functions for formdrop.
//
// This package contains all the command execution logic for formdrop commands,
// organized by command for maintainability and clean separation of concerns.
// Each handler file corresponds to a specific command and contains all related
// command handlers and helper functions.
//
// The package is organized as follows:
// - submit.go: Batch form submission from spreadsheet files (read, submit, report)
// - preview.go: Dry-run payload preview without network activity
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between submission logic and presentation logic
// - Flag-over-environment precedence for shared configuration values
//
// The handlers coordinate between the sheet reader, the batch submitter, and
// display functions while maintaining clean architectural boundaries and a
// consistent user experience across all formdrop commands.
package handlers
