package model

import "time"

// Record is a parsed employee/project assignment. From and To are UTC
// midnights. To is never zero; open-ended assignments are closed with the
// mapping clock's current day. From <= To is not guaranteed: source data may
// carry inverted ranges, and the overlap stage tolerates them.
type Record struct {
	EmployeeID string
	ProjectID  string
	From       time.Time
	To         time.Time
}
