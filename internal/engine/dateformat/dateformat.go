package dateformat

// Format is one of the four positional date layouts tandem can infer. The
// whole dataset is assumed to use a single layout, so one Format is decided
// per run and applied to every row.
type Format int

const (
	YearMonthDay Format = iota // yyyy-MM-dd
	YearDayMonth               // yyyy-dd-MM
	MonthDayYear               // MM-dd-yyyy
	DayMonthYear               // dd-MM-yyyy
)

// String returns the layout tag in conventional pattern notation.
func (f Format) String() string {
	switch f {
	case YearDayMonth:
		return "yyyy-dd-MM"
	case MonthDayYear:
		return "MM-dd-yyyy"
	case DayMonthYear:
		return "dd-MM-yyyy"
	default:
		return "yyyy-MM-dd"
	}
}

// Layout returns the Go reference-time layout for parsing dates in this format.
func (f Format) Layout() string {
	switch f {
	case YearDayMonth:
		return "2006-02-01"
	case MonthDayYear:
		return "01-02-2006"
	case DayMonthYear:
		return "02-01-2006"
	default:
		return "2006-01-02"
	}
}
