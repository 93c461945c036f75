// Package sheet provides tabular data extraction for formdrop batch runs.
//
// This package implements row reading over CSV and XLSX sources with a shared
// header-row convention: the first row defines column names and every
// subsequent row becomes a Row keyed by those names. It is the single entry
// point between spreadsheet files on disk and the submitter's payload
// building, keeping file-format concerns out of the submission path.
//
// READER BEHAVIOR:
//   - Format detection: By file extension (.csv vs .xlsx)
//   - Header handling: First row supplies column names, whitespace-trimmed
//   - Cell values: Always strings, whitespace-trimmed; empty cells allowed
//   - Short rows: Map only the columns they have; extra cells are dropped
//
// No schema is enforced beyond the header-row convention. Validation of which
// columns a batch run actually needs happens in the submitter configuration,
// not here.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/formdrop-dev/formdrop/internal/logging"
	"github.com/xuri/excelize/v2"
)

// Row is one record extracted from the sheet, keyed by column name.
// Values are always strings; a missing column and an empty cell are
// indistinguishable through Get, which is the behavior payload building
// relies on.
type Row map[string]string

// Get returns the value for a column, or the empty string when the column
// is absent. Keeps callers free of two-value map lookups when a missing
// column should behave exactly like an empty cell.
func (r Row) Get(column string) string {
	return r[column]
}

// Data holds the extracted sheet contents: the header names in file order
// and one Row per data row, preserving input order.
type Data struct {
	Headers []string
	Rows    []Row
}

// Reader reads tabular files into Data. The format is fixed at construction
// time from the file extension so a Reader always parses the same way no
// matter how often it is invoked.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given file path, detecting the format
// from the extension. Anything that is not .csv is treated as XLSX, matching
// the two source formats batch runs are fed from.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read extracts header names and data rows from the source file. Returns an
// error for unreadable files or files without at least a header row and one
// data row, since an empty batch is almost always a wrong-file mistake rather
// than a valid run.
func (r *Reader) Read() (*Data, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readXLSX()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readXLSX reads the first sheet of an XLSX workbook into raw string rows.
func (r *Reader) readXLSX() (*Data, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// Use the first sheet regardless of its name
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("XLSX file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// readCSV reads a CSV file into raw string rows.
func (r *Reader) readCSV() (*Data, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows narrower or wider than the header are handled in processRows
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into Data: the first row becomes the
// trimmed header list and every following row becomes a Row keyed by header
// name. Cells beyond the header width are dropped; short rows simply omit
// the trailing columns.
func (r *Reader) processRows(rows [][]string) (*Data, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(Row, len(headers))

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	logging.Debug("%s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &Data{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
