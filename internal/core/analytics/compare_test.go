package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adperf/internal/core/domain"
)

func period(start, end string) domain.Period {
	return domain.Period{Start: day(start), End: day(end)}
}

func TestPrecedingPeriod(t *testing.T) {
	got := Preceding(period("2024-03-15", "2024-03-20"))
	assert.Equal(t, period("2024-03-09", "2024-03-14"), got)
}

func TestPrecedingPeriodIsAdjacentAndEqualLength(t *testing.T) {
	start := day("2024-01-01")
	for span := 0; span < 400; span += 7 {
		p := domain.Period{Start: start, End: start.AddDate(0, 0, span)}
		before := Preceding(p)

		assert.Equal(t, p.Days(), before.Days())
		assert.Equal(t, p.Start.AddDate(0, 0, -1), before.End)
	}
}

func TestPreviousMonthPeriod(t *testing.T) {
	got, err := PreviousMonth(period("2024-06-15", "2024-06-20"))
	require.NoError(t, err)
	assert.Equal(t, period("2024-05-15", "2024-05-20"), got)

	got, err = PreviousMonth(period("2024-03-01", "2024-03-20"))
	require.NoError(t, err)
	assert.Equal(t, period("2024-01-01", "2024-02-20"), got)
}

func TestPreviousMonthUnrepresentableDay(t *testing.T) {
	_, err := PreviousMonth(period("2024-03-30", "2024-04-02"))
	assert.ErrorIs(t, err, ErrPreviousMonthDate)

	_, err = BeforePeriod(period("2024-03-30", "2024-04-02"), domain.CompareModePreviousMonth)
	assert.ErrorIs(t, err, ErrPreviousMonthDate)
}

func TestBeforePeriodValidation(t *testing.T) {
	_, err := BeforePeriod(period("2024-03-20", "2024-03-19"), domain.CompareModePreceding)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = BeforePeriod(period("2024-03-19", "2024-03-20"), domain.CompareMode("yearly"))
	assert.ErrorIs(t, err, ErrUnknownCompareMode)

	got, err := BeforePeriod(period("2024-03-20", "2024-03-20"), domain.CompareModePreceding)
	require.NoError(t, err)
	assert.Equal(t, period("2024-03-19", "2024-03-19"), got)
}

func TestPercentageChange(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	assert.Nil(t, PercentageChange(nil, f(1)))
	assert.Nil(t, PercentageChange(f(1), nil))
	assert.Nil(t, PercentageChange(f(5), f(0)))
	assert.Nil(t, PercentageChange(nil, f(0)))
	assert.Equal(t, 50.0, *PercentageChange(f(150), f(100)))
	assert.Equal(t, -75.0, *PercentageChange(f(50), f(200)))
	assert.Equal(t, 33.33, *PercentageChange(f(4), f(3)))
}

func allMetrics(m domain.ComparisonMetrics) map[string]domain.MetricChange {
	return map[string]domain.MetricChange{
		"total_cost":              m.TotalCost,
		"total_clicks":            m.TotalClicks,
		"total_conversions":       m.TotalConversions,
		"total_impressions":       m.TotalImpressions,
		"avg_cost_per_click":      m.AvgCostPerClick,
		"avg_cost_per_conversion": m.AvgCostPerConversion,
		"avg_click_through_rate":  m.AvgClickThroughRate,
		"avg_conversion_rate":     m.AvgConversionRate,
	}
}

func TestCompareWithoutData(t *testing.T) {
	cur := period("2024-03-15", "2024-03-20")
	c := Compare(cur, Preceding(cur), domain.Totals{}, domain.Totals{})

	assert.Equal(t, domain.DateRange{
		FromStartDate:   "2024-03-15",
		FromEndDate:     "2024-03-20",
		BeforeStartDate: "2024-03-09",
		BeforeEndDate:   "2024-03-14",
	}, c.DateRange)
	for name, m := range allMetrics(c.Metrics) {
		assert.Nil(t, m.Current, name)
		assert.Nil(t, m.Before, name)
		assert.Nil(t, m.PercentageChange, name)
	}
}

func TestCompareRatesUseFractionsForChange(t *testing.T) {
	cur := Accumulate([]domain.StatRecord{{Impressions: 2000, Clicks: 50, Conversions: 5, Cost: 100}})
	prev := Accumulate([]domain.StatRecord{{Impressions: 2000, Clicks: 40, Conversions: 2, Cost: 80}})
	p := period("2024-03-15", "2024-03-20")

	m := Compare(p, Preceding(p), cur, prev).Metrics

	assert.Equal(t, 2.5, *m.AvgClickThroughRate.Current)
	assert.Equal(t, 2.0, *m.AvgClickThroughRate.Before)
	assert.Equal(t, 25.0, *m.AvgClickThroughRate.PercentageChange)
	assert.Equal(t, 10.0, *m.AvgConversionRate.Current)
	assert.Equal(t, 5.0, *m.AvgConversionRate.Before)
	assert.Equal(t, 100.0, *m.AvgConversionRate.PercentageChange)
	assert.Equal(t, 25.0, *m.TotalCost.PercentageChange)
	assert.Equal(t, 50.0, *m.TotalClicks.Current)
}

func TestCompareZeroBeforeHasNoChange(t *testing.T) {
	cur := Accumulate([]domain.StatRecord{{Impressions: 100, Clicks: 5, Cost: 10}})
	prev := Accumulate([]domain.StatRecord{{Impressions: 100}})
	p := period("2024-03-15", "2024-03-20")

	m := Compare(p, Preceding(p), cur, prev).Metrics

	require.NotNil(t, m.TotalCost.Before)
	assert.Equal(t, 0.0, *m.TotalCost.Before)
	assert.Nil(t, m.TotalCost.PercentageChange)
	assert.Nil(t, m.TotalClicks.PercentageChange)
	assert.Nil(t, m.AvgCostPerClick.Before)
	assert.Nil(t, m.AvgCostPerClick.PercentageChange)
	assert.NotNil(t, m.TotalImpressions.PercentageChange)
}
