package tandem

import "time"

type options struct {
	clock    func() time.Time
	encoding string
}

// Option configures a Tandem instance.
type Option func(*options)

// WithToday fixes the day substituted for open-ended assignments.
// Default: the system clock at analysis time.
func WithToday(day time.Time) Option {
	return func(o *options) {
		o.clock = func() time.Time { return day }
	}
}

// WithClock sets the clock used to close open-ended assignments. WithToday
// is usually enough; use this when the caller owns a clock abstraction.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithEncoding sets the input character set for AnalyzeFile and
// AnalyzeReader: "utf-8" (default, BOM tolerated), "utf-16", "utf-16be",
// or "windows-1252".
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

func defaultOptions() options {
	return options{clock: time.Now}
}
