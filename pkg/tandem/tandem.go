package tandem

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/tandem/internal/engine"
	"github.com/crimson-sun/tandem/internal/ingest"
	"github.com/crimson-sun/tandem/internal/model"
)

// Tandem analyzes employee/project assignment datasets. Analysis is a pure
// in-memory batch; an instance is cheap to create and safe for concurrent use.
type Tandem struct {
	engine   *engine.Engine
	encoding string
}

// New creates a Tandem instance.
func New(opts ...Option) *Tandem {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tandem{
		engine:   engine.New(o.clock),
		encoding: o.encoding,
	}
}

// AnalyzeFile reads a CSV file and returns the longest-coworking pair(s).
func (t *Tandem) AnalyzeFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("tandem: %w", err)
	}
	defer f.Close()
	return t.AnalyzeReader(ctx, f)
}

// AnalyzeReader reads CSV data from r and returns the longest-coworking
// pair(s). The first line is treated as a header and skipped.
func (t *Tandem) AnalyzeReader(_ context.Context, r io.Reader) (Result, error) {
	rows, stats, err := ingest.DecodeCSV(r, t.encoding)
	if err != nil {
		return Result{}, fmt.Errorf("tandem: %w", err)
	}

	result := t.engine.Analyze(rows)
	result.Stats.RowsRead = stats.RowsRead
	result.Stats.RowsSkipped += stats.RowsSkipped
	return resultFromInternal(result), nil
}

// AnalyzeRows runs the analysis over rows the caller already split. Use this
// when the data does not come from a CSV file.
func (t *Tandem) AnalyzeRows(rows []Row) Result {
	raw := make([]model.RawRow, len(rows))
	for i, r := range rows {
		raw[i] = model.RawRow{
			EmployeeID: r.EmployeeID,
			ProjectID:  r.ProjectID,
			DateFrom:   r.DateFrom,
			DateTo:     r.DateTo,
		}
	}
	return resultFromInternal(t.engine.Analyze(raw))
}
