package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"launchdash/internal"

	"github.com/xuri/excelize/v2"
)

// Table is a header row plus string cells keyed by normalised column name.
type Table struct {
	Headers []string
	Rows    []Row
}

// Row maps a normalised column name to its trimmed cell.
type Row map[string]string

// HasColumn reports whether the normalised column exists.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	logger   *internal.Logger
}

// NewDataReader creates a reader for filePath, choosing CSV or XLSX by extension.
// sheet is only consulted for XLSX files.
func NewDataReader(filePath, sheet string, logger *internal.Logger) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xlsm" {
		fileType = "xlsx"
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: sheet, logger: logger}
}

// FileType returns "csv" or "xlsx".
func (r *DataReader) FileType() string {
	return r.fileType
}

// ReadTable reads the whole file into a Table.
func (r *DataReader) ReadTable(ctx context.Context) (*Table, error) {
	r.logger.Debug("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, fmt.Errorf("%s file not accessible: %w", strings.ToUpper(r.fileType), err)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows(ctx)
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s file has no header row", strings.ToUpper(r.fileType))
	}

	return r.processRows(rows), nil
}

// readExcelRows reads every row of the configured sheet
func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.sheet, err)
	}
	return rows, nil
}

// readCSVRows reads CSV records, checking ctx between rows
func (r *DataReader) readCSVRows(ctx context.Context) ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// processRows converts raw string rows into a Table, skipping blank lines
func (r *DataReader) processRows(rows [][]string) *Table {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = NormalizeColumn(header)
	}

	table := &Table{Headers: headers}
	for _, raw := range rows[1:] {
		if isBlank(raw) {
			continue
		}
		row := make(Row, len(headers))
		for j, cell := range raw {
			if j < len(headers) {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		table.Rows = append(table.Rows, row)
	}

	r.logger.Debug("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(table.Rows))
	return table
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// NormalizeColumn lowercases a header and collapses every run of
// non-alphanumeric characters into one underscore: "Payload Mass (kg)" -> "payload_mass_kg".
func NormalizeColumn(header string) string {
	header = strings.TrimPrefix(strings.TrimSpace(header), "\ufeff")

	var b strings.Builder
	pendingSep := false
	for _, ch := range strings.ToLower(header) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(ch)
			pendingSep = false
			continue
		}
		pendingSep = true
	}
	return b.String()
}
