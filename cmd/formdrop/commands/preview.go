// Package commands provides the preview command definition for formdrop.
//
// This file implements the dry-run command that shows what a submission
// would send — built payloads and attachment resolution — without making
// any network calls. Useful for checking a field mapping against a new
// sheet before burning real API calls.
package commands

import (
	"github.com/spf13/cobra"
)

// Preview command (dry run)
var previewCmd = &cobra.Command{
	Use:   "preview <sheet-file>",
	Short: "Show what a submission would send, without network calls",
	Long: `Read a CSV or XLSX file, build the payload for every row, and
display the resulting form fields and attachment resolution without
submitting anything.

Attachment paths are checked against the local filesystem exactly as
during submission, so the preview shows which rows would attach a file,
which would be skipped, and which would fail in strict mode.`,
	Example: `  # Preview payloads for a sheet
  formdrop preview applicants.csv --fields=id,name,email

  # Preview attachment resolution
  formdrop preview applicants.csv --fields=id,name --attachment-column=resume

  # Preview in JSON format
  formdrop -o json preview applicants.csv --fields=id,name`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetPreviewCommand returns the preview command for handler assignment
func GetPreviewCommand() *cobra.Command {
	return previewCmd
}

// SetupPreviewFlags configures flags for the preview command. Preview shares
// the field mapping and attachment flags with submit but carries none of the
// network-facing options since it never sends a request.
func SetupPreviewFlags(cmd *cobra.Command, fieldsPtr *[]string,
	idColumnPtr, attachmentColumnPtr, attachmentFieldPtr *string, strictPtr *bool,
	defaultIDColumn, defaultAttachmentField string) {
	cmd.Flags().StringSliceVar(fieldsPtr, "fields", nil,
		"Columns copied verbatim from row to payload (env: FORMDROP_FIELDS)")
	cmd.Flags().StringVar(idColumnPtr, "id-column", defaultIDColumn,
		"Column identifying rows in output (falls back to row number)")
	cmd.Flags().StringVar(attachmentColumnPtr, "attachment-column", "",
		"Column holding a local file path to attach (env: FORMDROP_ATTACHMENT_COLUMN)")
	cmd.Flags().StringVar(attachmentFieldPtr, "attachment-field", defaultAttachmentField,
		"Multipart part name for the attachment")
	cmd.Flags().BoolVar(strictPtr, "strict-attachments", false,
		"Show rows with missing attachment files as failures")
}
