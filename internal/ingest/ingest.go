// Package ingest turns tabular input into raw assignment rows. Sources are
// pluggable via a registry; the CSV decoding and character-set handling they
// share lives here.
package ingest

import (
	"context"

	"github.com/crimson-sun/tandem/internal/model"
)

// Source defines the interface all row sources must implement.
type Source interface {
	// Read fetches every data row from the configured input in one batch.
	Read(ctx context.Context, cfg SourceConfig) ([]model.RawRow, Stats, error)
}

// SourceConfig holds source-specific settings.
type SourceConfig struct {
	Path     string // input location, for sources that need one
	Encoding string // input character set, see DecodeCSV
}

// Stats reports ingestion side counts.
type Stats struct {
	RowsRead    int // data rows seen, header excluded
	RowsSkipped int // rows dropped for a wrong column count
}
