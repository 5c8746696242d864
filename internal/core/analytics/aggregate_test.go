package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adperf/internal/core/domain"
)

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAccumulateEmptySet(t *testing.T) {
	tot := Accumulate(nil)

	assert.Zero(t, tot.Records)
	assert.Nil(t, ClickThroughRate(tot))
	assert.Nil(t, ConversionRate(tot))
	assert.Equal(t, domain.Summary{}, Summarize(tot))
}

func TestAccumulateSkipsZeroDenominators(t *testing.T) {
	records := []domain.StatRecord{
		{Impressions: 1000, Clicks: 10, Conversions: 2, Cost: 20},
		{Impressions: 500, Clicks: 0, Conversions: 0, Cost: 5},
		{Impressions: 500, Clicks: 40, Conversions: 0.5, Cost: 40},
	}

	tot := Accumulate(records)

	assert.EqualValues(t, 3, tot.Records)
	assert.InDelta(t, 65.0, tot.Cost, 1e-9)
	assert.EqualValues(t, 50, tot.Clicks)
	assert.InDelta(t, 2.5, tot.Conversions, 1e-9)
	assert.EqualValues(t, 2000, tot.Impressions)
	require.NotNil(t, tot.AvgCostPerClick)
	assert.InDelta(t, 1.5, *tot.AvgCostPerClick, 1e-9)
	require.NotNil(t, tot.AvgCostPerConversion)
	assert.InDelta(t, 45.0, *tot.AvgCostPerConversion, 1e-9)

	s := Summarize(tot)
	require.NotNil(t, s.TotalCost)
	assert.Equal(t, 65.0, *s.TotalCost)
	assert.Equal(t, int64(50), *s.TotalClicks)
	assert.Equal(t, 2.5, *s.TotalConversions)
	assert.Equal(t, int64(2000), *s.TotalImpressions)
	assert.Equal(t, 1.5, *s.AvgCostPerClick)
	assert.Equal(t, 45.0, *s.AvgCostPerConversion)
	assert.Equal(t, 2.5, *s.AvgClickThroughRate)
	assert.Equal(t, 5.0, *s.AvgConversionRate)
}

func TestSummarizeWithoutActivity(t *testing.T) {
	tot := Accumulate([]domain.StatRecord{{Date: day("2024-03-01"), Device: "mobile"}})

	s := Summarize(tot)
	require.NotNil(t, s.TotalCost)
	assert.Equal(t, 0.0, *s.TotalCost)
	assert.Nil(t, s.AvgCostPerClick)
	assert.Nil(t, s.AvgCostPerConversion)
	require.NotNil(t, s.AvgClickThroughRate)
	assert.Equal(t, 0.0, *s.AvgClickThroughRate)
	require.NotNil(t, s.AvgConversionRate)
	assert.Equal(t, 0.0, *s.AvgConversionRate)
}

func TestTotalsMatchRecordSums(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 1; n <= 50; n++ {
		records := make([]domain.StatRecord, n)
		var cost float64
		var clicks, impressions int64
		for i := range records {
			records[i] = domain.StatRecord{
				Impressions: int64(r.Intn(5000)),
				Clicks:      int64(r.Intn(200)),
				Conversions: float64(r.Intn(300)) / 10,
				Cost:        r.Float64() * 500,
			}
			cost += records[i].Cost
			clicks += records[i].Clicks
			impressions += records[i].Impressions
		}

		tot := Accumulate(records)
		assert.InDelta(t, cost, tot.Cost, 1e-6)

		if impressions == 0 {
			continue
		}
		ctr := ClickThroughRate(tot)
		require.NotNil(t, ctr)
		assert.InDelta(t, float64(clicks)/float64(impressions), *ctr, 1e-12)
		assert.Equal(t, Round(*ctr*100), *Summarize(tot).AvgClickThroughRate)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.33, Round(10.0/3))
	assert.Equal(t, 0.67, Round(2.0/3))
	assert.Equal(t, 12.0, Round(12))
}
