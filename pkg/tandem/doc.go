// Package tandem finds the pair of employees that worked together longest
// on a common project, given a CSV of employee/project date-range
// assignments whose date layout is inferred from the data itself.
//
// Quick start:
//
//	t := tandem.New(tandem.WithToday(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
//
//	result, err := t.AnalyzeFile(context.Background(), "assignments.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range result.Pairs {
//	    fmt.Println(p.EmployeeA, p.EmployeeB, p.ProjectID, p.DaysWorked)
//	}
//
// Results carry every pair that ties the global maximum overlap. Rows that
// fail validation or do not fit the inferred layout are skipped and counted,
// never fatal.
package tandem
