// Package validate filters raw rows down to those whose date fields are
// lexically well-formed, before any layout is inferred or any value parsed.
package validate

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/crimson-sun/tandem/internal/model"
)

// Three numeric groups separated by dashes: 1-4 digits, 1-2 digits, 1-4 digits.
var datePattern = regexp.MustCompile(`^\d{1,4}-\d{1,2}-\d{1,4}$`)

// Rows returns the subsequence of rows whose dates pass the lexical checks,
// in the original order, plus the count of rows dropped. DateFrom must match
// the numeric-triple pattern; DateTo must be the literal NULL
// (case-insensitive) or non-empty and match the same pattern. Dropped rows
// are logged, never fatal.
func Rows(rows []model.RawRow) ([]model.RawRow, int) {
	valid := make([]model.RawRow, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if !rowValid(row) {
			dropped++
			slog.Warn("skipping row with invalid date format",
				"employee_id", row.EmployeeID,
				"project_id", row.ProjectID,
				"date_from", row.DateFrom,
				"date_to", row.DateTo)
			continue
		}
		valid = append(valid, row)
	}
	return valid, dropped
}

func rowValid(row model.RawRow) bool {
	if !WellFormed(row.DateFrom) {
		return false
	}
	if strings.EqualFold(row.DateTo, "NULL") {
		return true
	}
	return row.DateTo != "" && WellFormed(row.DateTo)
}

// WellFormed reports whether s consists of three numeric groups separated by '-'.
func WellFormed(s string) bool {
	return datePattern.MatchString(s)
}
