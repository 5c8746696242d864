package domain

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// TruncateDay drops the time of day, keeping the calendar date of t in its
// own location, and returns it as midnight UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered by p.
func (p Period) Days() int {
	return int(TruncateDay(p.End).Sub(TruncateDay(p.Start)).Hours()/24) + 1
}

// Valid reports whether Start is not after End.
func (p Period) Valid() bool {
	return !p.Start.After(p.End)
}

// Filter returns a StatFilter covering p for every campaign.
func (p Period) Filter() StatFilter {
	return StatFilter{From: p.Start, To: p.End}
}

// Granularity is the width of a time-series bucket.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Valid reports whether g is one of the supported bucket widths.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// CompareMode selects how the comparison period is derived.
type CompareMode string

const (
	// CompareModePreceding compares with the equally long period that ends
	// the day before the current one starts.
	CompareModePreceding CompareMode = "preceding"
	// CompareModePreviousMonth compares with the same days one month back.
	CompareModePreviousMonth CompareMode = "previous_month"
)

// Valid reports whether m is a supported comparison mode.
func (m CompareMode) Valid() bool {
	return m == CompareModePreceding || m == CompareModePreviousMonth
}
