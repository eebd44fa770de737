package model

// RawRow is the intermediate type produced by ingest sources and consumed by
// the validation stage. All four fields are raw CSV text.
type RawRow struct {
	EmployeeID string
	ProjectID  string
	DateFrom   string
	DateTo     string // may be empty or the literal "NULL" for ongoing assignments
}
