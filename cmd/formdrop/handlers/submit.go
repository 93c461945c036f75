// Package handlers provides command handler functions for formdrop submission.
//
// This file contains the submit command handler for batch form submission,
// including spreadsheet reading, per-row multipart submission, result display,
// and optional report export. The handler enables operators to drive bulk
// form submissions from CSV and XLSX files with full per-row error isolation.
//
// The submit handler manages:
// - Environment fallback resolution for endpoint, token, and field mapping
// - Spreadsheet reading and header-to-column row mapping
// - Batch submission with per-row bearer-token multipart POST requests
// - Result and summary display in table or JSON format
// - Optional JSON or CSV report export for downstream processing
//
// The handler follows consistent patterns with other formdrop handlers,
// providing standardized error handling, logging, and output formatting while
// maintaining clean separation between submission and presentation logic.
package handlers

import (
	"fmt"
	"time"

	"github.com/formdrop-dev/formdrop/cmd/formdrop/config"
	"github.com/formdrop-dev/formdrop/cmd/formdrop/display"
	"github.com/formdrop-dev/formdrop/cmd/formdrop/utils"
	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/formdrop-dev/formdrop/internal/report"
	"github.com/formdrop-dev/formdrop/internal/sheet"
	"github.com/formdrop-dev/formdrop/internal/submitter"
	"github.com/spf13/cobra"
)

// readSheet reads and maps a spreadsheet file into header-keyed rows.
// Shared by submit and preview so both commands accept the same formats.
func readSheet(filePath string) (*sheet.Data, error) {
	logging.Info("Reading sheet file: %s", filePath)

	data, err := sheet.NewReader(filePath).Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	logging.Info("Read %d data rows (%d columns)", len(data.Rows), len(data.Headers))
	return data, nil
}

// submitterConfig builds the batch submitter configuration from resolved CLI
// and environment settings. Shared by submit and preview so both commands
// interpret field mapping and attachment handling identically.
func submitterConfig() submitter.Config {
	return submitter.Config{
		EndpointURL:       config.Submit.Endpoint,
		Token:             config.Submit.Token,
		Fields:            config.Submit.Fields,
		IDColumn:          config.Submit.IDColumn,
		AttachmentColumn:  config.Submit.AttachmentColumn,
		AttachmentField:   config.Submit.AttachmentField,
		StrictAttachments: config.Submit.StrictAttachments,
		Timeout:           time.Duration(config.Submit.Timeout) * time.Second,
		Workers:           config.Submit.Workers,
	}
}

// HandleSubmit handles the submit command for batch form submission from a
// spreadsheet file. Reads the sheet, submits one multipart POST per data row
// with bearer token authentication, displays per-row results with a run
// summary, and optionally exports a report file.
//
// Row failures never abort the batch: every row produces exactly one result
// and the command reports the failure count after the full run completes.
func HandleSubmit(cmd *cobra.Command, args []string) error {
	if err := utils.SetupLogging(); err != nil {
		return err
	}
	defer utils.CleanupLogFile()
	config.ApplyEnvFallbacks()

	data, err := readSheet(args[0])
	if err != nil {
		return err
	}

	batch, err := submitter.New(submitterConfig())
	if err != nil {
		return err
	}

	startedAt := time.Now()
	results := batch.SubmitAll(cmd.Context(), data.Rows)
	summary := report.Summarize(batch.RunID(), config.Submit.Endpoint, startedAt, results)

	display.DisplayRun(summary, results)

	if config.Submit.Report != "" {
		if err := report.Write(config.Submit.Report, summary, results); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logging.Info("Wrote report to %s", config.Submit.Report)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d rows failed", summary.Failed, summary.TotalRows)
	}
	logging.Success("Successfully submitted %d rows", summary.Succeeded)
	return nil
}
