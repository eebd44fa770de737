package tandem

import "github.com/crimson-sun/tandem/internal/model"

// Row is a raw assignment row for callers that do their own CSV handling.
type Row struct {
	EmployeeID string
	ProjectID  string
	DateFrom   string
	DateTo     string // empty or "NULL" means still ongoing
}

// Pair is two employees and the number of calendar days their assignments to
// a common project overlapped. DaysWorked is an exclusive day count.
type Pair struct {
	EmployeeA  string
	EmployeeB  string
	ProjectID  string
	DaysWorked int64
}

// Result is the outcome of one analysis.
type Result struct {
	Format      string // inferred date layout tag, e.g. "yyyy-MM-dd"
	Pairs       []Pair // every pair achieving the global maximum overlap
	RowsRead    int    // data rows seen, header excluded
	RowsSkipped int    // rows dropped at any stage
}

func resultFromInternal(r model.Result) Result {
	pairs := make([]Pair, len(r.Pairs))
	for i, p := range r.Pairs {
		pairs[i] = Pair{
			EmployeeA:  p.EmployeeA,
			EmployeeB:  p.EmployeeB,
			ProjectID:  p.ProjectID,
			DaysWorked: p.DaysWorked,
		}
	}
	return Result{
		Format:      r.Format,
		Pairs:       pairs,
		RowsRead:    r.Stats.RowsRead,
		RowsSkipped: r.Stats.RowsSkipped,
	}
}
