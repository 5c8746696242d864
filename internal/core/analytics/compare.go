package analytics

import (
	"errors"
	"fmt"
	"time"

	"adperf/internal/core/domain"
)

var (
	// ErrPreviousMonthDate is returned when the same day of month does not
	// exist in the month the previous_month mode lands on.
	ErrPreviousMonthDate = errors.New("previous month date does not exist")
	// ErrInvalidPeriod is returned for a period that starts after it ends.
	ErrInvalidPeriod = errors.New("start date is after end date")
	// ErrUnknownCompareMode is returned for an unsupported comparison mode.
	ErrUnknownCompareMode = errors.New("unknown compare mode")
)

// BeforePeriod derives the period that p is compared against.
func BeforePeriod(p domain.Period, mode domain.CompareMode) (domain.Period, error) {
	if !p.Valid() {
		return domain.Period{}, ErrInvalidPeriod
	}
	switch mode {
	case domain.CompareModePreceding:
		return Preceding(p), nil
	case domain.CompareModePreviousMonth:
		return PreviousMonth(p)
	default:
		return domain.Period{}, fmt.Errorf("%w: %q", ErrUnknownCompareMode, mode)
	}
}

// Preceding returns the period of the same length that ends the day before
// p starts.
func Preceding(p domain.Period) domain.Period {
	span := p.Days()
	return domain.Period{
		Start: domain.TruncateDay(p.Start).AddDate(0, 0, -span),
		End:   domain.TruncateDay(p.End).AddDate(0, 0, -span),
	}
}

// PreviousMonth moves both ends of p back 30 days and then restores their
// original day of month. This approximates "same days last month" and fails
// with ErrPreviousMonthDate when that day does not exist in the target month.
func PreviousMonth(p domain.Period) (domain.Period, error) {
	start, err := sameDayLastMonth(p.Start)
	if err != nil {
		return domain.Period{}, err
	}
	end, err := sameDayLastMonth(p.End)
	if err != nil {
		return domain.Period{}, err
	}
	return domain.Period{Start: start, End: end}, nil
}

func sameDayLastMonth(d time.Time) (time.Time, error) {
	d = domain.TruncateDay(d)
	shifted := d.AddDate(0, 0, -30)
	out := time.Date(shifted.Year(), shifted.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if out.Month() != shifted.Month() {
		return time.Time{}, fmt.Errorf("%w: day %d in %s %d", ErrPreviousMonthDate, d.Day(), shifted.Month(), shifted.Year())
	}
	return out, nil
}

// PercentageChange returns the change from before to current in percent,
// rounded to two decimals. It is nil when either value is missing or when
// before is zero.
func PercentageChange(current, before *float64) *float64 {
	if before == nil || *before == 0 || current == nil {
		return nil
	}
	return ptr(Round((*current - *before) / *before * 100))
}

// metricValues are the full-precision values compared per metric. Rates are
// fractions here.
type metricValues struct {
	cost, clicks, conversions, impressions *float64
	cpc, cpa, ctr, cvr                     *float64
}

func valuesOf(t domain.Totals) metricValues {
	if t.Records == 0 {
		return metricValues{}
	}
	return metricValues{
		cost:        ptr(t.Cost),
		clicks:      ptr(float64(t.Clicks)),
		conversions: ptr(t.Conversions),
		impressions: ptr(float64(t.Impressions)),
		cpc:         t.AvgCostPerClick,
		cpa:         t.AvgCostPerConversion,
		ctr:         ClickThroughRate(t),
		cvr:         ConversionRate(t),
	}
}

// change computes the percentage change on the raw values and, separately,
// the display form of each side.
func change(current, before *float64, display func(*float64) *float64) domain.MetricChange {
	return domain.MetricChange{
		Current:          display(current),
		Before:           display(before),
		PercentageChange: PercentageChange(current, before),
	}
}

// Compare builds the comparison between the totals of the current period
// and those of the before period.
func Compare(current, before domain.Period, cur, prev domain.Totals) domain.Comparison {
	c, b := valuesOf(cur), valuesOf(prev)
	return domain.Comparison{
		DateRange: domain.DateRange{
			FromStartDate:   current.Start.Format(domain.DateLayout),
			FromEndDate:     current.End.Format(domain.DateLayout),
			BeforeStartDate: before.Start.Format(domain.DateLayout),
			BeforeEndDate:   before.End.Format(domain.DateLayout),
		},
		Metrics: domain.ComparisonMetrics{
			TotalCost:            change(c.cost, b.cost, roundPtr),
			TotalClicks:          change(c.clicks, b.clicks, roundPtr),
			TotalConversions:     change(c.conversions, b.conversions, roundPtr),
			TotalImpressions:     change(c.impressions, b.impressions, roundPtr),
			AvgCostPerClick:      change(c.cpc, b.cpc, roundPtr),
			AvgCostPerConversion: change(c.cpa, b.cpa, roundPtr),
			AvgClickThroughRate:  change(c.ctr, b.ctr, percentPtr),
			AvgConversionRate:    change(c.cvr, b.cvr, percentPtr),
		},
	}
}
