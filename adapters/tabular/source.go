package tabular

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
)

// Normalised names of the columns every launch file must carry.
const (
	ColumnLaunchSite             = "launch_site"
	ColumnPayloadMassKg          = "payload_mass_kg"
	ColumnClass                  = "class"
	ColumnBoosterVersionCategory = "booster_version_category"
)

// RequiredColumns lists the launch columns in output order.
var RequiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMassKg,
	ColumnClass,
	ColumnBoosterVersionCategory,
}

// FileSource loads launch records from a CSV or XLSX file.
type FileSource struct {
	reader *DataReader
	path   string
}

// NewFileSource creates a LaunchSource backed by path.
func NewFileSource(path, sheet string, logger *internal.Logger) *FileSource {
	return &FileSource{reader: NewDataReader(path, sheet, logger), path: path}
}

// Describe returns the file path.
func (s *FileSource) Describe() string {
	return s.path
}

// Load reads the file and converts each row into a launch.Record.
func (s *FileSource) Load(ctx context.Context) ([]launch.Record, error) {
	table, err := s.reader.ReadTable(ctx)
	if err != nil {
		return nil, err
	}
	return RecordsFromTable(s.path, table)
}

// RecordsFromTable checks the required columns and parses every row.
func RecordsFromTable(source string, table *Table) ([]launch.Record, error) {
	var missing []string
	for _, col := range RequiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, core.NewMissingColumnError(source, missing)
	}

	records := make([]launch.Record, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec, err := parseRow(row)
		if err != nil {
			// +2: 1-based and the header occupies the first line.
			return nil, core.NewInvalidRecordError(i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row Row) (launch.Record, error) {
	payload, err := strconv.ParseFloat(row[ColumnPayloadMassKg], 64)
	if err != nil {
		return launch.Record{}, fmt.Errorf("payload mass %q is not a number", row[ColumnPayloadMassKg])
	}

	classValue, err := strconv.ParseFloat(row[ColumnClass], 64)
	if err != nil || classValue != math.Trunc(classValue) {
		return launch.Record{}, fmt.Errorf("class %q is not an integer", row[ColumnClass])
	}

	rec := launch.Record{
		LaunchSite:             row[ColumnLaunchSite],
		PayloadMassKg:          payload,
		Class:                  int(classValue),
		BoosterVersionCategory: row[ColumnBoosterVersionCategory],
	}
	if err := rec.Validate(); err != nil {
		return launch.Record{}, err
	}
	return rec, nil
}
