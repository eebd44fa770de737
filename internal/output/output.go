package output

import (
	"context"

	"github.com/crimson-sun/tandem/internal/model"
)

// Output defines the interface for analysis result destinations.
type Output interface {
	// WriteResult renders one run's result: the inferred format followed by
	// one entry per winning pair.
	WriteResult(ctx context.Context, result model.Result) error
	Close() error
}
