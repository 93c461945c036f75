// Payload building: the row-to-request mapping half of the submitter.
//
// Separated from the submission path so the preview command can build and
// display payloads without touching the network, and so attachment
// resolution rules (silent skip vs strict mode) live in exactly one place.

package submitter

import (
	"fmt"
	"os"

	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/formdrop-dev/formdrop/internal/sheet"
)

// Payload is the subset of a Row sent as the request body: scalar form
// fields plus an optional resolved attachment path. An empty AttachmentPath
// means no file part will be sent.
type Payload struct {
	Fields         map[string]string
	AttachmentPath string
}

// buildPayload maps one row to a Payload using the configured field list and
// attachment column.
//
// Scalar fields are copied verbatim; a column missing from the row omits the
// field rather than erroring, matching the no-schema contract of the sheet
// reader. When an attachment column is configured and non-empty the path is
// checked on the local filesystem: a present file is attached, a missing one
// is skipped silently by default or fails the row in strict mode.
func (b *BatchSubmitter) buildPayload(row sheet.Row) (Payload, error) {
	payload := Payload{
		Fields: make(map[string]string, len(b.cfg.Fields)),
	}

	for _, field := range b.cfg.Fields {
		if value, ok := row[field]; ok {
			payload.Fields[field] = value
		}
	}

	if b.cfg.AttachmentColumn == "" {
		return payload, nil
	}

	path := row.Get(b.cfg.AttachmentColumn)
	if path == "" {
		return payload, nil
	}

	if _, err := os.Stat(path); err != nil {
		if b.cfg.StrictAttachments {
			return Payload{}, fmt.Errorf("attachment file not found: %s", path)
		}
		// Default behavior: submit the scalar fields without the file part
		logging.Warn("Attachment file not found, submitting without it: %s", path)
		return payload, nil
	}

	payload.AttachmentPath = path
	return payload, nil
}

// BuildPayload exposes payload construction for dry-run previews. Identical
// to the mapping used during submission, including attachment resolution.
func (b *BatchSubmitter) BuildPayload(row sheet.Row) (Payload, error) {
	return b.buildPayload(row)
}
