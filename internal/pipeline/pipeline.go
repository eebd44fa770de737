// Package pipeline connects an ingest source, the analysis engine, and an
// output into a one-shot batch run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/crimson-sun/tandem/internal/engine"
	"github.com/crimson-sun/tandem/internal/ingest"
	"github.com/crimson-sun/tandem/internal/model"
	"github.com/crimson-sun/tandem/internal/output"
)

// Pipeline runs ingest → analysis → output for a single input.
type Pipeline struct {
	source ingest.Source
	engine *engine.Engine
	output output.Output
}

// New creates a Pipeline from the given components.
func New(src ingest.Source, eng *engine.Engine, out output.Output) *Pipeline {
	return &Pipeline{
		source: src,
		engine: eng,
		output: out,
	}
}

// Run executes one batch analysis. Ingest failures are logged and produce no
// output; the run error is returned so the caller can set an exit code. An
// input with no overlapping pairs is a normal run with an empty pair list.
func (p *Pipeline) Run(ctx context.Context, cfg ingest.SourceConfig) (model.Result, error) {
	log := slog.With("run_id", uuid.NewString())
	log.Info("starting analysis", "path", cfg.Path)

	rows, stats, err := p.source.Read(ctx, cfg)
	if err != nil {
		log.Error("ingest failed", "err", err)
		return model.Result{}, fmt.Errorf("pipeline ingest: %w", err)
	}

	result := p.engine.Analyze(rows)
	result.Stats.RowsRead = stats.RowsRead
	result.Stats.RowsSkipped += stats.RowsSkipped

	if err := p.output.WriteResult(ctx, result); err != nil {
		return result, fmt.Errorf("pipeline output: %w", err)
	}

	log.Info("analysis complete",
		"format", result.Format,
		"pairs", len(result.Pairs),
		"rows_read", result.Stats.RowsRead,
		"rows_skipped", result.Stats.RowsSkipped)
	return result, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
