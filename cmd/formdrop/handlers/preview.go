// Package handlers provides command handler functions for formdrop preview.
//
// This file contains the preview command handler for dry-run payload
// inspection, including spreadsheet reading, row-to-payload mapping, and
// attachment resolution without any network activity. The handler lets
// operators verify field mapping and attachment paths before a real
// submission run.
//
// The preview handler manages:
// - Environment fallback resolution shared with the submit command
// - Row-to-payload mapping using the exact submission-time rules
// - Attachment resolution notes for missing and present files
// - Payload display in table or JSON format
//
// The handler follows consistent patterns with other formdrop handlers,
// providing standardized error handling, logging, and output formatting.
package handlers

import (
	"strconv"

	"github.com/formdrop-dev/formdrop/cmd/formdrop/config"
	"github.com/formdrop-dev/formdrop/cmd/formdrop/display"
	"github.com/formdrop-dev/formdrop/cmd/formdrop/utils"
	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/formdrop-dev/formdrop/internal/submitter"
	"github.com/spf13/cobra"
)

// HandlePreview handles the preview command for dry-run payload inspection.
// Reads the sheet and maps every row to the payload that submit would send,
// using the same field list and attachment resolution, but never makes a
// network request.
//
// Endpoint and token are not required for preview: placeholders satisfy the
// submitter configuration when they are unset, since nothing is sent.
func HandlePreview(cmd *cobra.Command, args []string) error {
	if err := utils.SetupLogging(); err != nil {
		return err
	}
	defer utils.CleanupLogFile()
	config.ApplyEnvFallbacks()

	data, err := readSheet(args[0])
	if err != nil {
		return err
	}

	cfg := submitterConfig()
	if cfg.EndpointURL == "" {
		cfg.EndpointURL = "http://preview.invalid"
	}
	if cfg.Token == "" {
		cfg.Token = "preview"
	}

	batch, err := submitter.New(cfg)
	if err != nil {
		return err
	}

	entries := make([]display.PreviewEntry, 0, len(data.Rows))
	for i, row := range data.Rows {
		entry := display.PreviewEntry{
			Row:   i + 1,
			RowID: row.Get(cfg.IDColumn),
		}
		if entry.RowID == "" {
			entry.RowID = strconv.Itoa(i + 1)
		}

		payload, err := batch.BuildPayload(row)
		if err != nil {
			// Strict mode surfaces the missing attachment as a per-row note
			// instead of aborting the preview
			entry.Note = err.Error()
			entries = append(entries, entry)
			continue
		}

		entry.Fields = payload.Fields
		entry.Attachment = payload.AttachmentPath
		if config.Submit.AttachmentColumn != "" && payload.AttachmentPath == "" {
			if path := row.Get(config.Submit.AttachmentColumn); path != "" {
				entry.Note = "attachment missing, would submit without it"
			}
		}
		entries = append(entries, entry)
	}

	display.DisplayPreview(entries)
	logging.Success("Previewed %d rows", len(entries))
	return nil
}
