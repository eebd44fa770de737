package stdin

import (
	"context"
	"io"
	"os"

	"github.com/crimson-sun/tandem/internal/ingest"
	"github.com/crimson-sun/tandem/internal/model"
)

func init() {
	ingest.Register("stdin", func() ingest.Source {
		return &Source{}
	})
}

// Source reads assignment rows from standard input, for piped invocations.
type Source struct {
	// In overrides the input stream; nil means os.Stdin.
	In io.Reader
}

func (s *Source) Read(ctx context.Context, cfg ingest.SourceConfig) ([]model.RawRow, ingest.Stats, error) {
	in := s.In
	if in == nil {
		in = os.Stdin
	}
	return ingest.DecodeCSV(in, cfg.Encoding)
}
