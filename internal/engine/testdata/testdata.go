// Package testdata provides a shared sample dataset for pipeline tests: a
// small assignment CSV with well-formed rows, two rows carrying invalid
// dates, one row with a missing column, and three open-ended assignments.
package testdata

import (
	_ "embed"
	"time"

	"github.com/crimson-sun/tandem/internal/model"
)

//go:embed assignments.csv
var assignmentsCSV []byte

// Today is the fixed clock day tests use to close the open-ended
// assignments in the sample dataset.
var Today = time.Date(2016, 6, 1, 0, 0, 0, 0, time.UTC)

// CSV returns the raw sample file bytes.
func CSV() []byte {
	return assignmentsCSV
}

// Rows returns the sample data as pre-split raw rows: every four-field data
// row in file order, including the two with invalid dates. The header and
// the wrong-column-count line are already gone, as ingestion would leave them.
func Rows() []model.RawRow {
	return []model.RawRow{
		{EmployeeID: "143", ProjectID: "12", DateFrom: "2013-11-01", DateTo: "2014-01-05"},
		{EmployeeID: "218", ProjectID: "10", DateFrom: "2012-05-16", DateTo: "NULL"},
		{EmployeeID: "143", ProjectID: "10", DateFrom: "2009-01-01", DateTo: "2011-04-27"},
		{EmployeeID: "432", ProjectID: "12", DateFrom: "2015-03-25", DateTo: "2016-07-19"},
		{EmployeeID: "218", ProjectID: "12", DateFrom: "2014-02-01", DateTo: "2015-06-30"},
		{EmployeeID: "512", ProjectID: "14", DateFrom: "2013-10-05", DateTo: "2015-05-12"},
		{EmployeeID: "219", ProjectID: "14", DateFrom: "2013-05-10", DateTo: "2014-10-20"},
		{EmployeeID: "432", ProjectID: "10", DateFrom: "2011-06-30", DateTo: "2013-12-15"},
		{EmployeeID: "143", ProjectID: "12", DateFrom: "2016-04-10", DateTo: "NULL"},
		{EmployeeID: "512", ProjectID: "10", DateFrom: "2011-07-01", DateTo: "INVALID_DATE"},
		{EmployeeID: "219", ProjectID: "12", DateFrom: "INVALID", DateTo: "2016-11-30"},
		{EmployeeID: "143", ProjectID: "14", DateFrom: "2012-09-18", DateTo: "2014-12-21"},
		{EmployeeID: "218", ProjectID: "14", DateFrom: "2014-11-30", DateTo: "2016-05-10"},
		{EmployeeID: "512", ProjectID: "12", DateFrom: "2015-02-15", DateTo: "NULL"},
		{EmployeeID: "432", ProjectID: "14", DateFrom: "2013-03-05", DateTo: "2014-09-15"},
	}
}
