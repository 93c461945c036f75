// Package report provides batch run summaries and report file export for
// formdrop.
//
// A report is the durable counterpart of the per-row log lines: operators
// re-running a batch the next day work from the exported file, not from
// scrollback. Two formats are supported, chosen by file extension:
//
//   - .json: the full run — summary plus every row's result, machine-readable
//   - .csv:  failed rows only, one line per failure, for spreadsheet triage
//     and for building the retry input sheet by hand
//
// The CSV export intentionally contains only failures since that is the list
// an operator acts on; the JSON export preserves everything for auditing.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/formdrop-dev/formdrop/internal/submitter"
	"github.com/gocarina/gocsv"
)

// Summary aggregates one batch run's outcome for display and export.
type Summary struct {
	RunID     string        `json:"run_id"`
	Endpoint  string        `json:"endpoint"`
	TotalRows int           `json:"total_rows"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Attached  int           `json:"attached"`
	Duration  time.Duration `json:"duration"`
	StartedAt time.Time     `json:"started_at"`
}

// Report is the full exported run: the summary plus every row's result in
// input order.
type Report struct {
	Summary Summary            `json:"summary"`
	Results []submitter.Result `json:"results"`
}

// failureRow is the CSV shape for one failed row.
type failureRow struct {
	Row    int    `csv:"row"`    // 1-based row number in the input sheet
	RowID  string `csv:"row_id"` // ID column value or row number
	Status int    `csv:"status"` // HTTP status, 0 for local/transport errors
	Error  string `csv:"error"`
}

// Summarize builds a Summary from a run's results.
func Summarize(runID, endpoint string, startedAt time.Time, results []submitter.Result) Summary {
	summary := Summary{
		RunID:     runID,
		Endpoint:  endpoint,
		TotalRows: len(results),
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
	}

	for _, result := range results {
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		if result.Attached {
			summary.Attached++
		}
	}

	return summary
}

// Write exports a run report to the given path, picking the format from the
// extension: .json for the full report, .csv for the failed-rows table.
func Write(path string, summary Summary, results []submitter.Result) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return writeJSON(path, summary, results)
	case ".csv":
		return writeCSV(path, results)
	default:
		return fmt.Errorf("unsupported report format %q: use a .json or .csv path", filepath.Ext(path))
	}
}

// writeJSON writes the full report (summary plus all results) as indented JSON.
func writeJSON(path string, summary Summary, results []submitter.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Report{Summary: summary, Results: results}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// writeCSV writes the failed rows as a CSV table. A fully successful run
// still produces a file with just the header so downstream tooling never has
// to special-case a missing report.
func writeCSV(path string, results []submitter.Result) error {
	failures := make([]failureRow, 0)
	for _, result := range results {
		if result.Success {
			continue
		}
		failures = append(failures, failureRow{
			Row:    result.Index + 1,
			RowID:  result.RowID,
			Status: result.Status,
			Error:  result.Error,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&failures, file); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}
