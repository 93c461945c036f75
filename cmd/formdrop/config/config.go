// Package config provides configuration management for the formdrop CLI.
package config

import "github.com/formdrop-dev/formdrop/internal/version"

// Version returns the current formdrop CLI version from the centralized version package
var Version = version.FormdropVersion

// Global holds the global CLI configuration
var Global struct {
	LogLevel string // Log level for CLI operations
	LogFile  string // Log file path (empty = stdout/stderr)
	Output   string // Output format: table, json
	Verbose  bool   // Show verbose output
}

// Submit holds the submit and preview command configuration. Flags take
// precedence; unset values fall back to FORMDROP_* environment variables.
var Submit struct {
	Endpoint          string   // Multipart POST target URL
	Token             string   // Bearer token for the Authorization header
	Fields            []string // Scalar columns copied from row to payload
	IDColumn          string   // Column identifying rows in output
	AttachmentColumn  string   // Column holding a local file path to attach
	AttachmentField   string   // Multipart part name for the attachment
	StrictAttachments bool     // Fail rows with missing attachment files
	Timeout           int      // Per-row request timeout in seconds
	Workers           int      // Submission concurrency (1 = sequential)
	Report            string   // Optional report file path (.json or .csv)
}
