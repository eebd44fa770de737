package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/crimson-sun/tandem/internal/model"
)

// WriteText renders the result as human-readable lines: one announcing the
// inferred date format, then one per winning pair. An empty pair list writes
// only the format line.
func WriteText(w io.Writer, result model.Result) error {
	if _, err := fmt.Fprintf(w, "Inferred Date Format: %s\n", result.Format); err != nil {
		return err
	}
	for _, p := range result.Pairs {
		_, err := fmt.Fprintf(w, "Employees %s and %s worked together on project %s for %d days\n",
			p.EmployeeA, p.EmployeeB, p.ProjectID, p.DaysWorked)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteNDJSON renders the result as newline-delimited JSON: a meta line with
// the inferred format and run stats, then one object per winning pair.
func WriteNDJSON(w io.Writer, result model.Result) error {
	enc := json.NewEncoder(w)
	meta := struct {
		Format string      `json:"format"`
		Stats  model.Stats `json:"stats"`
	}{result.Format, result.Stats}
	if err := enc.Encode(meta); err != nil {
		return err
	}
	for _, p := range result.Pairs {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}
