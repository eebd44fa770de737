package file

import (
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/tandem/internal/ingest"
	"github.com/crimson-sun/tandem/internal/model"
)

func init() {
	ingest.Register("file", func() ingest.Source {
		return &Source{}
	})
}

// Source reads assignment rows from a CSV file on disk.
type Source struct{}

func (s *Source) Read(ctx context.Context, cfg ingest.SourceConfig) ([]model.RawRow, ingest.Stats, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, ingest.Stats{}, fmt.Errorf("file source: %w", err)
	}
	defer f.Close()
	return ingest.DecodeCSV(f, cfg.Encoding)
}
