// Package overlap computes the pair(s) of employees sharing the longest
// overlapping window on a common project.
package overlap

import (
	"sort"
	"time"

	"github.com/crimson-sun/tandem/internal/model"
)

const secondsPerDay = 24 * 60 * 60

// Longest finds the single global maximum overlap across every project and
// returns all pairs achieving it. Projects are visited in sorted key order
// and records pairwise in row order, so the result is deterministic for a
// given input. A zero-length overlap (same day) still counts, with zero
// days. Returns nil when no two records overlap anywhere.
func Longest(groups map[string][]model.Record) []model.Pair {
	acc := accumulator{best: -1}

	projects := make([]string, 0, len(groups))
	for id := range groups {
		projects = append(projects, id)
	}
	sort.Strings(projects)

	for _, projectID := range projects {
		records := groups[projectID]
		for i := 0; i < len(records); i++ {
			for j := i + 1; j < len(records); j++ {
				days, ok := Window(records[i], records[j])
				if !ok {
					continue
				}
				acc = acc.add(model.Pair{
					EmployeeA:  records[i].EmployeeID,
					EmployeeB:  records[j].EmployeeID,
					ProjectID:  projectID,
					DaysWorked: days,
				})
			}
		}
	}
	return acc.pairs
}

// accumulator threads the running global maximum through the pair fold:
// a strictly greater value restarts the list, an equal value appends.
type accumulator struct {
	best  int64
	pairs []model.Pair
}

func (a accumulator) add(p model.Pair) accumulator {
	switch {
	case p.DaysWorked > a.best:
		return accumulator{best: p.DaysWorked, pairs: []model.Pair{p}}
	case p.DaysWorked == a.best:
		a.pairs = append(a.pairs, p)
	}
	return a
}

// Window returns the exclusive day count of the two records' overlap window
// [max(from), min(to)], or ok=false when the ranges do not intersect. The
// count is end minus start, not end minus start plus one; callers depend on
// that exact arithmetic.
func Window(a, b model.Record) (int64, bool) {
	start := laterOf(a.From, b.From)
	end := earlierOf(a.To, b.To)
	if start.After(end) {
		return 0, false
	}
	return epochDay(end) - epochDay(start), true
}

// epochDay counts whole days since the Unix epoch. Record dates are UTC
// midnights, so this stays exact even for spans that would overflow a
// time.Duration.
func epochDay(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
