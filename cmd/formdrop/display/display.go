// Package display provides output formatting and display functions for formdrop.
//
// This package handles all user-facing output formatting including table and
// JSON output for batch results, run summaries, and dry-run previews. It
// provides consistent formatting across all formdrop commands with support
// for verbose mode and different output formats.
//
// The display functions handle:
// - Per-row submission results with status and timing
// - Batch run summaries with success/failure totals
// - Preview payloads with attachment resolution notes
// - Consistent table formatting using text/tabwriter
// - JSON output with proper indentation and error handling
//
// All display functions respect global configuration for output format and
// verbosity while maintaining clean separation from submission logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/formdrop-dev/formdrop/cmd/formdrop/config"
	"github.com/formdrop-dev/formdrop/cmd/formdrop/utils"
	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/formdrop-dev/formdrop/internal/report"
	"github.com/formdrop-dev/formdrop/internal/submitter"
)

// detailWidth caps the DETAIL column so one verbose endpoint response
// cannot wreck the whole table
const detailWidth = 60

// DisplayRun displays a complete batch run: per-row results followed by the
// run summary. JSON output emits the same structure as the exported report
// so piping to a file and using --report are interchangeable.
func DisplayRun(summary report.Summary, results []submitter.Result) {
	if config.Global.Output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report.Report{Summary: summary, Results: results}); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Println("Error encoding JSON output")
		}
		return
	}

	displayResultsTable(results)
	displaySummary(summary)
}

// displayResultsTable renders one table line per row result.
func displayResultsTable(results []submitter.Result) {
	if len(results) == 0 {
		fmt.Println("No rows submitted")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ROW\tID\tSTATUS\tATTACHED\tTIME\tDETAIL")

	for _, result := range results {
		status := "failed"
		detail := utils.Truncate(result.Error, detailWidth)
		if result.Success {
			status = fmt.Sprintf("ok (%d)", result.Status)
			detail = utils.Truncate(formatResponse(result.Response), detailWidth)
		} else if result.Status > 0 {
			status = fmt.Sprintf("failed (%d)", result.Status)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\t%s\n",
			result.Index+1, result.RowID, status, result.Attached,
			utils.FormatDuration(result.Duration), detail)
	}
}

// displaySummary renders the run totals block shown after the results table.
func displaySummary(summary report.Summary) {
	fmt.Printf("\nRun %s\n", summary.RunID)
	fmt.Printf("  Endpoint:  %s\n", summary.Endpoint)
	fmt.Printf("  Rows:      %d\n", summary.TotalRows)
	fmt.Printf("  Succeeded: %d\n", summary.Succeeded)
	fmt.Printf("  Failed:    %d\n", summary.Failed)
	fmt.Printf("  Attached:  %d\n", summary.Attached)
	fmt.Printf("  Duration:  %s\n", utils.FormatDuration(summary.Duration))
}

// formatResponse renders a decoded response body for the DETAIL column.
// Structured bodies are re-marshaled compactly; strings pass through.
func formatResponse(response any) string {
	switch v := response.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}

// PreviewEntry is one row of dry-run output: the payload that would be sent
// and how the attachment column resolved.
type PreviewEntry struct {
	Row        int               `json:"row"`
	RowID      string            `json:"row_id"`
	Fields     map[string]string `json:"fields"`
	Attachment string            `json:"attachment,omitempty"`
	Note       string            `json:"note,omitempty"`
}

// DisplayPreview displays dry-run payloads in tabular or JSON format.
// The table shows fields in sorted key=value form so the same sheet always
// previews identically.
func DisplayPreview(entries []PreviewEntry) {
	if config.Global.Output == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			logging.Error("Failed to encode JSON: %v", err)
			fmt.Println("Error encoding JSON output")
		}
		return
	}

	if len(entries) == 0 {
		fmt.Println("No rows to preview")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ROW\tID\tFIELDS\tATTACHMENT\tNOTE")

	for _, entry := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			entry.Row, entry.RowID, formatFields(entry.Fields),
			entry.Attachment, entry.Note)
	}
}

// formatFields renders payload fields as sorted key=value pairs.
func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := ""
	for i, key := range keys {
		if i > 0 {
			out += " "
		}
		out += key + "=" + strconv.Quote(fields[key])
	}
	return out
}
