package dateformat

import (
	"strconv"
	"strings"

	"github.com/crimson-sun/tandem/internal/model"
)

// Years outside this range are treated as day or month values.
const (
	yearMin = 1900
	yearMax = 2100
)

// Infer scans validated rows and deduces the date layout used across the
// dataset. The first numeric component greater than 12 cannot be a month, so
// the first field containing one fixes the day/month ordering and scanning
// stops there. When no field disambiguates, the year position of the first
// parseable field anchors the fallback: yyyy-MM-dd if the field started with
// a year, dd-MM-yyyy otherwise (including empty input).
//
// The same single-field short-circuit means one misleading early value can
// lock in a wrong layout for the whole dataset; semantic parse failures
// downstream absorb the fallout row by row.
func Infer(rows []model.RawRow) Format {
	startsWithYear := false
	determined := false

	for _, row := range rows {
		for _, field := range []string{row.DateFrom, row.DateTo} {
			if field == "" || strings.EqualFold(field, "NULL") {
				continue
			}

			parts := splitDate(field)
			if len(parts) != 3 {
				continue
			}

			p1, err1 := strconv.Atoi(parts[0])
			p2, err2 := strconv.Atoi(parts[1])
			p3, err3 := strconv.Atoi(parts[2])
			if err1 != nil || err2 != nil || err3 != nil {
				continue
			}

			p1IsYear := p1 >= yearMin && p1 <= yearMax
			p3IsYear := p3 >= yearMin && p3 <= yearMax

			if !determined {
				startsWithYear = p1IsYear
				determined = true
			}

			switch {
			case p1IsYear && p2 > 12:
				return YearDayMonth
			case p1IsYear && p3 > 12:
				return YearMonthDay
			case !p1IsYear && p3IsYear && p1 > 12:
				return DayMonthYear
			case !p1IsYear && p3IsYear && p2 > 12:
				return MonthDayYear
			}
		}
	}

	if startsWithYear {
		return YearMonthDay
	}
	return DayMonthYear
}

// splitDate splits a date field on - and / separators. Leading and adjacent
// separators produce empty tokens, so a field like "-2014-03-25" yields four
// parts and is rejected by the caller's length check; trailing empty tokens
// are dropped.
func splitDate(field string) []string {
	parts := strings.Split(strings.ReplaceAll(field, "/", "-"), "-")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
