package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/tandem/internal/model"
	"github.com/crimson-sun/tandem/internal/output"
)

// Multi fans a result out to multiple output.Output implementations. If one
// destination fails, the remaining destinations still receive the result.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// WriteResult delivers the result to every wrapped output, collecting errors.
func (m *Multi) WriteResult(ctx context.Context, result model.Result) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.WriteResult(ctx, result); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
