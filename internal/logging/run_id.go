// Package logging provides run ID formatting utilities for consistent batch
// run identification across all logging contexts in formdrop.
//
// Implements context-aware ID truncation that preserves full UUID run IDs in
// debug contexts while providing short IDs in info/warning contexts, improving
// log readability without sacrificing traceability when detailed debugging
// is needed.
//
// ID FORMATTING STRATEGY:
//   - Debug logs: Full UUID for complete traceability across reports and logs
//   - Info/Warn/Error/Success logs: Truncated 8-character IDs for readability
package logging

import (
	"github.com/charmbracelet/log"
)

// shortRunIDLength is the number of leading UUID characters shown in
// non-debug log output. Eight characters cover the first UUID group, which
// is enough to disambiguate runs in practice.
const shortRunIDLength = 8

// FormatRunID formats a batch run ID for logging based on the current log
// level context. Returns the full UUID for debug logging to ensure complete
// traceability when correlating logs with exported reports, while returning
// a truncated 8-character ID for other log levels to keep per-row output
// compact.
func FormatRunID(id string) string {
	// If debug level is enabled, show full IDs for complete traceability
	// Use stderr logger since debug messages go to stderr
	if stderrLogger.GetLevel() <= log.DebugLevel {
		return id
	}

	if len(id) <= shortRunIDLength {
		return id
	}
	return id[:shortRunIDLength]
}
