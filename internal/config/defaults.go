// Package config provides common default configuration values shared across
// formdrop components (sheet reader, submitter, CLI). This centralizes
// configuration management and ensures the CLI flags, environment fallbacks,
// and library defaults stay consistent.
package config

const (
	// DefaultLogLevel is the default log level for CLI operations
	// ERROR keeps normal batch output clean while still surfacing failures
	DefaultLogLevel = "ERROR"

	// DefaultTimeoutSeconds is the per-row request timeout in seconds
	// Each row's request runs under its own deadline so a hung endpoint
	// fails that row only instead of stalling the whole batch
	DefaultTimeoutSeconds = 30

	// DefaultIDColumn is the column used to identify rows in log output
	// Falls back to the 1-based row number when the column is absent
	DefaultIDColumn = "id"

	// DefaultAttachmentField is the multipart part name for file attachments
	DefaultAttachmentField = "file"

	// DefaultWorkers is the number of concurrent submissions
	// 1 means strictly sequential processing in input order
	DefaultWorkers = 1
)
