package tandem_test

import (
	"fmt"
	"time"

	"github.com/crimson-sun/tandem/pkg/tandem"
)

func Example() {
	t := tandem.New(tandem.WithToday(time.Date(2016, 6, 1, 0, 0, 0, 0, time.UTC)))

	result := t.AnalyzeRows([]tandem.Row{
		{EmployeeID: "218", ProjectID: "10", DateFrom: "2012-05-16", DateTo: "NULL"},
		{EmployeeID: "432", ProjectID: "10", DateFrom: "2011-06-30", DateTo: "2013-12-15"},
		{EmployeeID: "143", ProjectID: "10", DateFrom: "2009-01-01", DateTo: "2011-04-27"},
	})

	fmt.Println("Format:", result.Format)
	for _, p := range result.Pairs {
		fmt.Printf("%s and %s on project %s: %d days\n",
			p.EmployeeA, p.EmployeeB, p.ProjectID, p.DaysWorked)
	}
	// Output:
	// Format: yyyy-MM-dd
	// 218 and 432 on project 10: 578 days
}
