// Package mapper parses validated rows into typed records under the inferred
// date layout and groups them by project.
package mapper

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/crimson-sun/tandem/internal/engine/dateformat"
	"github.com/crimson-sun/tandem/internal/model"
)

// Clock supplies the current time for open-ended assignments. Injected so
// runs are reproducible and tests deterministic.
type Clock func() time.Time

// Group parses every row under the given format and folds the results into a
// map from project ID to records in row order. A row whose values do not
// actually fit the layout (a 14th month, a 31st day landing in the month
// slot) is skipped and counted, never aborting the batch: the layout itself
// is a heuristic guess, so per-row misfits are expected. The returned map is
// not mutated after return.
func Group(rows []model.RawRow, f dateformat.Format, now Clock) (map[string][]model.Record, int) {
	groups := make(map[string][]model.Record)
	skipped := 0
	for _, row := range rows {
		rec, err := MapRow(row, f, now)
		if err != nil {
			skipped++
			slog.Debug("skipping row that does not fit inferred layout",
				"employee_id", row.EmployeeID,
				"project_id", row.ProjectID,
				"err", err)
			continue
		}
		groups[rec.ProjectID] = append(groups[rec.ProjectID], rec)
	}
	return groups, skipped
}

// MapRow parses a single validated row into a Record. An empty or NULL
// DateTo is replaced with the clock's current day. The error identifies
// which field failed and why; callers treat it as a skip decision.
func MapRow(row model.RawRow, f dateformat.Format, now Clock) (model.Record, error) {
	from, err := time.ParseInLocation(f.Layout(), row.DateFrom, time.UTC)
	if err != nil {
		return model.Record{}, fmt.Errorf("date_from %q: %w", row.DateFrom, err)
	}

	var to time.Time
	if row.DateTo == "" || strings.EqualFold(row.DateTo, "NULL") {
		to = Today(now())
	} else {
		to, err = time.ParseInLocation(f.Layout(), row.DateTo, time.UTC)
		if err != nil {
			return model.Record{}, fmt.Errorf("date_to %q: %w", row.DateTo, err)
		}
	}

	return model.Record{
		EmployeeID: row.EmployeeID,
		ProjectID:  row.ProjectID,
		From:       from,
		To:         to,
	}, nil
}

// Today truncates t to a UTC midnight so substituted end dates compare
// cleanly with parsed ones.
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
