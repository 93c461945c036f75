// Package utils provides utility functions for the formdrop CLI.
package utils

import (
	"fmt"
	"time"
)

// FormatDuration converts Go time.Duration values into compact human-readable
// strings for CLI output. Sub-second durations keep millisecond precision
// since individual form submissions usually complete well under a second;
// longer durations scale up through seconds and minutes for whole-batch
// summaries.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}

// Truncate shortens a string to at most n runes for table display, appending
// an ellipsis when content was cut. Response bodies and error messages can
// be arbitrarily long; tables cannot.
func Truncate(s string, n int) string {
	if n <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
