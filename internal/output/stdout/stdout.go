package stdout

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/tandem/internal/model"
	"github.com/crimson-sun/tandem/internal/output"
)

// Output writes results to stdout as human-readable text or NDJSON.
type Output struct {
	w      io.Writer
	ndjson bool
}

// New creates a stdout Output. With ndjson set, results are emitted as
// newline-delimited JSON instead of text lines.
func New(ndjson bool) *Output {
	return &Output{w: os.Stdout, ndjson: ndjson}
}

func (o *Output) WriteResult(_ context.Context, result model.Result) error {
	var err error
	if o.ndjson {
		err = output.WriteNDJSON(o.w, result)
	} else {
		err = output.WriteText(o.w, result)
	}
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
