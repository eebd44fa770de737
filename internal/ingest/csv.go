package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/crimson-sun/tandem/internal/model"
)

// DecodeCSV reads assignment rows from r. The first line is a header and is
// skipped unconditionally. Rows with a field count other than four are
// dropped and logged with the offending line, a filtering decision rather than an
// error. Only transport and CSV framing failures return one, and rows
// decoded before the failure are returned alongside it.
func DecodeCSV(r io.Reader, encoding string) ([]model.RawRow, Stats, error) {
	decoded, err := decodeReader(r, encoding)
	if err != nil {
		return nil, Stats{}, err
	}

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1 // column-count policy is ours, not the csv package's

	var rows []model.RawRow
	var stats Stats
	header := true
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			return rows, stats, nil
		}
		if err != nil {
			return rows, stats, fmt.Errorf("read csv: %w", err)
		}
		if header {
			header = false
			continue
		}

		stats.RowsRead++
		if len(fields) != 4 {
			stats.RowsSkipped++
			slog.Warn("skipping row with wrong column count",
				"line", strings.Join(fields, ","))
			continue
		}
		rows = append(rows, model.RawRow{
			EmployeeID: fields[0],
			ProjectID:  fields[1],
			DateFrom:   fields[2],
			DateTo:     fields[3],
		})
	}
}
