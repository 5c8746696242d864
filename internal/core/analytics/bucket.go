package analytics

import (
	"fmt"
	"slices"
	"time"

	"adperf/internal/core/domain"
)

// BucketStart returns the first day of the g-wide bucket containing d.
// Weeks start on Monday.
func BucketStart(d time.Time, g domain.Granularity) time.Time {
	d = domain.TruncateDay(d)
	switch g {
	case domain.GranularityWeek:
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case domain.GranularityMonth:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

// BucketKey formats the start of a bucket: YYYY-MM-DD for days, the ISO
// week YYYY-Www for weeks and YYYY-MM for months.
func BucketKey(start time.Time, g domain.Granularity) string {
	switch g {
	case domain.GranularityWeek:
		year, week := start.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.GranularityMonth:
		return start.Format("2006-01")
	default:
		return start.Format(domain.DateLayout)
	}
}

// Bucket groups records into g-wide buckets and accumulates each one. The
// result is ordered by bucket start, ascending. Empty buckets are omitted.
func Bucket(records []domain.StatRecord, g domain.Granularity) []domain.PeriodTotals {
	groups := make(map[int64][]domain.StatRecord)
	for _, r := range records {
		key := BucketStart(r.Date, g).Unix()
		groups[key] = append(groups[key], r)
	}
	out := make([]domain.PeriodTotals, 0, len(groups))
	for key, rs := range groups {
		out = append(out, domain.PeriodTotals{
			Start:  time.Unix(key, 0).UTC(),
			Totals: Accumulate(rs),
		})
	}
	slices.SortFunc(out, func(a, b domain.PeriodTotals) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// SummarizePeriods converts bucket totals into time-series rows.
func SummarizePeriods(periods []domain.PeriodTotals, g domain.Granularity) []domain.PeriodSummary {
	out := make([]domain.PeriodSummary, 0, len(periods))
	for _, p := range periods {
		out = append(out, domain.PeriodSummary{
			Period:  BucketKey(p.Start, g),
			Summary: Summarize(p.Totals),
		})
	}
	return out
}
