// Package commands provides the submit command definition for formdrop.
//
// This file implements the batch submission command: reading a tabular file
// and POSTing one multipart request per row. Submission behavior (field
// mapping, attachments, strictness, concurrency, reports) is controlled
// entirely through flags and FORMDROP_* environment fallbacks.
package commands

import (
	"github.com/spf13/cobra"
)

// Submit command (batch submission)
var submitCmd = &cobra.Command{
	Use:   "submit <sheet-file>",
	Short: "Submit every row of a sheet as a multipart form request",
	Long: `Submit every row of a CSV or XLSX file as an independent
multipart/form-data POST request.

The first row of the file defines column names. Configured scalar fields
are copied verbatim from each row into the request body; when an
attachment column is configured and the row's path exists locally, the
file is attached as a binary part. Rows are processed in input order and
one result is reported per row — a failed row never stops the batch.`,
	Example: `  # Submit with endpoint and token from flags
  formdrop submit applicants.csv --endpoint=https://api.example.com/apply \
    --token=$TOKEN --fields=id,name,email

  # Endpoint, token, and fields from FORMDROP_* environment variables
  formdrop submit applicants.csv

  # Attach files referenced by the resume column under the part name "cv"
  formdrop submit applicants.xlsx --fields=id,name \
    --attachment-column=resume --attachment-field=cv

  # Export a JSON report of the full run
  formdrop submit applicants.csv --fields=id,name --report=run.json`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetSubmitCommand returns the submit command for handler assignment
func GetSubmitCommand() *cobra.Command {
	return submitCmd
}

// SetupSubmitFlags configures flags shared by the submit command
func SetupSubmitFlags(cmd *cobra.Command, endpointPtr, tokenPtr *string,
	fieldsPtr *[]string, idColumnPtr, attachmentColumnPtr, attachmentFieldPtr *string,
	strictPtr *bool, timeoutPtr, workersPtr *int, reportPtr *string,
	defaultIDColumn, defaultAttachmentField string, defaultTimeout, defaultWorkers int) {
	cmd.Flags().StringVar(endpointPtr, "endpoint", "",
		"Target URL for multipart POST requests (env: FORMDROP_ENDPOINT)")
	cmd.Flags().StringVar(tokenPtr, "token", "",
		"Bearer token for the Authorization header (env: FORMDROP_TOKEN)")
	cmd.Flags().StringSliceVar(fieldsPtr, "fields", nil,
		"Columns copied verbatim from row to payload (env: FORMDROP_FIELDS)")
	cmd.Flags().StringVar(idColumnPtr, "id-column", defaultIDColumn,
		"Column identifying rows in output (falls back to row number)")
	cmd.Flags().StringVar(attachmentColumnPtr, "attachment-column", "",
		"Column holding a local file path to attach (env: FORMDROP_ATTACHMENT_COLUMN)")
	cmd.Flags().StringVar(attachmentFieldPtr, "attachment-field", defaultAttachmentField,
		"Multipart part name for the attachment")
	cmd.Flags().BoolVar(strictPtr, "strict-attachments", false,
		"Fail rows whose attachment file is missing instead of skipping it")
	cmd.Flags().IntVar(timeoutPtr, "timeout", defaultTimeout,
		"Per-row request timeout in seconds")
	cmd.Flags().IntVar(workersPtr, "workers", defaultWorkers,
		"Concurrent submissions (1 = strictly sequential)")
	cmd.Flags().StringVar(reportPtr, "report", "",
		"Write a run report to this path (.json = full run, .csv = failures)")
}
