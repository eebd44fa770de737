package model

// Pair is tandem's output type: two employees and the number of calendar
// days their assignments to the same project overlapped. DaysWorked is an
// exclusive day count: end epoch day minus start epoch day, so a same-day
// overlap is zero. Multiple pairs may carry the identical maximum.
type Pair struct {
	EmployeeA  string `json:"employee_a"`
	EmployeeB  string `json:"employee_b"`
	ProjectID  string `json:"project_id"`
	DaysWorked int64  `json:"days_worked"`
}
