package file

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/crimson-sun/tandem/internal/model"
	"github.com/crimson-sun/tandem/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Output writes NDJSON results to a file through a buffered writer. The
// file is truncated on open; each run produces a fresh result set.
type Output struct {
	w *bufio.Writer
	f *os.File
}

// New creates a file output writing NDJSON to the given path.
func New(path string) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	return &Output{
		f: f,
		w: bufio.NewWriterSize(f, defaultBufSize),
	}, nil
}

func (o *Output) WriteResult(_ context.Context, result model.Result) error {
	if err := output.WriteNDJSON(o.w, result); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
