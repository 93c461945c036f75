// Package submitter implements the batch form submission engine for formdrop.
//
// This package turns sheet rows into multipart/form-data POST requests and
// submits them one per row against a configured endpoint with bearer
// authentication. It is the core of the tool: everything else (CLI, sheet
// reading, display, reports) feeds it or consumes its results.
//
// SUBMISSION CONTRACT:
//   - One Result per input row, always: a row's failure is recorded, never
//     propagated, and never removes or skips subsequent rows
//   - Results preserve input order even when the bounded worker pool is used
//   - Each row's request runs under its own deadline; an expired deadline
//     fails that row only
//   - Attachment file handles are scoped per row and released after the
//     request completes, on both the success and failure paths
//   - Failed rows are reported once and never re-attempted
//
// ERROR TAXONOMY:
//   - Missing attachment file: skipped silently by default, or fails the row
//     in strict mode; never fatal to the batch
//   - Non-2xx response: captured with status and body, row marked failed
//   - Transport error: captured as a message, row marked failed
//
// The HTTP client is Resty configured the same way across all rows, with its
// internal logs routed through the structured logging system.
package submitter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/formdrop-dev/formdrop/internal/config"
	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/formdrop-dev/formdrop/internal/sheet"
	"github.com/formdrop-dev/formdrop/internal/validate"
	"github.com/formdrop-dev/formdrop/internal/version"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Config specifies everything a batch run needs: where to submit, how to
// authenticate, which columns become form fields, and how attachments are
// resolved. A Config is validated once at submitter construction so row
// processing never has to re-check it.
type Config struct {
	// EndpointURL is the multipart POST target
	EndpointURL string

	// Token is sent as an Authorization: Bearer header on every request
	Token string

	// Fields lists the scalar columns copied verbatim from row to payload.
	// A row missing one of these columns simply omits the field.
	Fields []string

	// IDColumn identifies rows in log output and results. When the column
	// is absent the 1-based row number is used instead.
	IDColumn string

	// AttachmentColumn, when non-empty, names the column holding a local
	// file path to attach as a binary part. Empty means no attachments.
	AttachmentColumn string

	// AttachmentField is the multipart part name for the attachment
	AttachmentField string

	// StrictAttachments fails a row whose attachment path does not exist
	// instead of silently submitting without the file part
	StrictAttachments bool

	// Timeout is the per-row request deadline
	Timeout time.Duration

	// Workers sets submission concurrency. 1 means strictly sequential
	// processing in input order; higher values use a bounded pool with
	// result order reconstructed by row index.
	Workers int
}

// applyDefaults fills zero-valued optional settings with the shared defaults
// so library callers get the same behavior as the CLI.
func (c *Config) applyDefaults() {
	if c.IDColumn == "" {
		c.IDColumn = config.DefaultIDColumn
	}
	if c.AttachmentField == "" {
		c.AttachmentField = config.DefaultAttachmentField
	}
	if c.Timeout == 0 {
		c.Timeout = time.Duration(config.DefaultTimeoutSeconds) * time.Second
	}
	if c.Workers == 0 {
		c.Workers = config.DefaultWorkers
	}
}

// Validate checks the configuration before any row is processed. Catching a
// bad endpoint or empty field mapping here produces one clear error instead
// of one failure result per row.
func (c *Config) Validate() error {
	if err := validate.ValidateEndpointURL(c.EndpointURL); err != nil {
		return err
	}
	if err := validate.ValidateRequiredString(c.Token, "auth token"); err != nil {
		return err
	}
	if err := validate.ValidateFieldList(c.Fields); err != nil {
		return fmt.Errorf("invalid field mapping: %w", err)
	}
	if err := validate.ValidatePositiveTimeout(c.Timeout, "request timeout"); err != nil {
		return err
	}
	if err := validate.ValidateWorkerCount(c.Workers); err != nil {
		return err
	}
	if c.AttachmentColumn != "" {
		if err := validate.ValidateRequiredString(c.AttachmentField, "attachment field name"); err != nil {
			return err
		}
	}
	return nil
}

// Result is the outcome of one row's submission. Exactly one Result exists
// per input row, at the same index as the row that produced it.
type Result struct {
	Index    int           `json:"index"`              // 0-based row index
	RowID    string        `json:"row_id"`             // value of the ID column, or 1-based row number
	Success  bool          `json:"success"`            // true for 2xx responses
	Status   int           `json:"status,omitempty"`   // HTTP status code when a response was received
	Response any           `json:"response,omitempty"` // decoded response body on success
	Error    string        `json:"error,omitempty"`    // error detail on failure
	Attached bool          `json:"attached"`           // true when a file part was sent
	Duration time.Duration `json:"duration"`           // wall time for this row's submission
}

// restyLogger implements resty.Logger and routes the client's internal logs
// through structured logging so HTTP diagnostics share the CLI's format.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// BatchSubmitter submits sheet rows as independent multipart form requests.
// It holds the configured Resty client and the run ID stamped on logs and
// reports; all per-row state lives in the Result values it produces.
type BatchSubmitter struct {
	cfg    Config
	client *resty.Client
	runID  string
}

// New creates a batch submitter with a fully configured Resty client for the
// given run. Validates the configuration, applies defaults for optional
// settings, and assigns the run a fresh UUID.
//
// The client carries the bearer token, per-request timeout, and User-Agent
// shared by every row. Retries are deliberately not configured: a failed row
// is reported once and never re-attempted.
func New(cfg Config) (*BatchSubmitter, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Library callers that bypass the CLI still get the quiet default level
	if !logging.IsConfiguredByCLI() {
		logging.SetLevel(config.DefaultLogLevel)
	}

	client := resty.New()

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(restyLogger{})

	client.
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("formdrop/%s", version.FormdropVersion))

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Submitting request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &BatchSubmitter{
		cfg:    cfg,
		client: client,
		runID:  uuid.NewString(),
	}, nil
}

// RunID returns the UUID assigned to this batch run. Stamped on log lines,
// the batch summary, and exported reports so a run can be correlated across
// all three.
func (b *BatchSubmitter) RunID() string {
	return b.runID
}

// Config returns the effective configuration after defaults were applied.
func (b *BatchSubmitter) Config() Config {
	return b.cfg
}

// SubmitAll submits every row and returns exactly one Result per row, in
// input order. With Workers == 1 rows are processed strictly sequentially:
// each row's request completes before the next begins. With Workers > 1 a
// bounded pool submits rows concurrently and the result sequence is
// reconstructed by row index afterward, preserving the same order and
// isolation contract.
//
// A row's failure never aborts the batch; the context cancels rows that have
// not completed yet, each producing its own failure result.
func (b *BatchSubmitter) SubmitAll(ctx context.Context, rows []sheet.Row) []Result {
	results := make([]Result, len(rows))

	logging.Info("Run %s: submitting %d rows to %s (workers: %d)",
		logging.FormatRunID(b.runID), len(rows), b.cfg.EndpointURL, b.cfg.Workers)

	if b.cfg.Workers <= 1 {
		for i, row := range rows {
			results[i] = b.submitRow(ctx, i, row)
		}
		return results
	}

	g := new(errgroup.Group)
	g.SetLimit(b.cfg.Workers)
	for i, row := range rows {
		g.Go(func() error {
			// Row failures are captured in the result slot, never returned:
			// returning an error would cancel sibling rows
			results[i] = b.submitRow(ctx, i, row)
			return nil
		})
	}
	// Workers never return errors, so there is nothing to collect here
	_ = g.Wait()

	return results
}

// submitRow builds and submits one row's payload and records the outcome.
// Every exit path fills the same Result slot so the batch-level invariant
// (one result per row) holds no matter how the row fails.
func (b *BatchSubmitter) submitRow(ctx context.Context, index int, row sheet.Row) Result {
	start := time.Now()
	result := Result{
		Index: index,
		RowID: b.rowID(index, row),
	}

	payload, err := b.buildPayload(row)
	if err != nil {
		// Strict attachment mode: missing file fails the row locally,
		// without a network call
		result.Error = err.Error()
		result.Duration = time.Since(start)
		logging.Error("Row %s: %s", result.RowID, result.Error)
		return result
	}

	req := b.client.R().
		SetContext(ctx).
		SetMultipartFormData(payload.Fields)

	if payload.AttachmentPath != "" {
		// Resty opens the file when the request is built and closes it when
		// the request completes, so the handle stays scoped to this row
		req.SetFile(b.cfg.AttachmentField, payload.AttachmentPath)
		result.Attached = true
	}

	resp, err := req.Post(b.cfg.EndpointURL)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		logging.Error("Row %s: %s", result.RowID, result.Error)
		return result
	}

	result.Status = resp.StatusCode()

	if resp.IsSuccess() {
		result.Success = true
		result.Response = decodeBody(resp.Body())
		logging.Success("Row %s: submitted (status %d)", result.RowID, result.Status)
		return result
	}

	result.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	logging.Error("Row %s: %s", result.RowID, result.Error)
	return result
}

// rowID returns the row's value in the configured ID column, falling back to
// the 1-based row number when the column is absent or empty.
func (b *BatchSubmitter) rowID(index int, row sheet.Row) string {
	if id := row.Get(b.cfg.IDColumn); id != "" {
		return id
	}
	return strconv.Itoa(index + 1)
}

// decodeBody decodes a response body as JSON when possible and falls back to
// the trimmed raw string otherwise, so success results are structured when
// the endpoint cooperates but nothing is lost when it does not.
func decodeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return decoded
	}
	return strings.TrimSpace(string(body))
}
