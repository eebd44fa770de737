package engine

import (
	"time"

	"github.com/crimson-sun/tandem/internal/engine/dateformat"
	"github.com/crimson-sun/tandem/internal/engine/mapper"
	"github.com/crimson-sun/tandem/internal/engine/overlap"
	"github.com/crimson-sun/tandem/internal/engine/validate"
	"github.com/crimson-sun/tandem/internal/model"
)

// Engine runs the validate → infer → map → pair stages over ingested rows.
// The whole analysis is a synchronous in-memory batch; every intermediate
// collection is owned by its stage and discarded once the next one consumed it.
type Engine struct {
	clock mapper.Clock
}

// New creates an Engine. A nil clock means the system clock; pass a fixed one
// to pin the substituted end date of open-ended assignments.
func New(clock mapper.Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{clock: clock}
}

// Analyze runs the full core pipeline over raw rows and returns the inferred
// format, the winning pair(s), and skip accounting. An empty input yields an
// empty pair list and the ambiguous fallback format, never an error.
func (e *Engine) Analyze(rows []model.RawRow) model.Result {
	valid, dropped := validate.Rows(rows)
	format := dateformat.Infer(valid)
	groups, misfit := mapper.Group(valid, format, e.clock)
	pairs := overlap.Longest(groups)

	return model.Result{
		Format: format.String(),
		Pairs:  pairs,
		Stats: model.Stats{
			RowsRead:    len(rows),
			RowsSkipped: dropped + misfit,
		},
	}
}
