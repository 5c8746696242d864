package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adperf/internal/core/domain"
)

func TestBucketStart(t *testing.T) {
	tests := []struct {
		date string
		g    domain.Granularity
		want string
	}{
		{"2024-03-20", domain.GranularityDay, "2024-03-20"},
		{"2024-03-20", domain.GranularityWeek, "2024-03-18"},
		{"2024-03-24", domain.GranularityWeek, "2024-03-18"},
		{"2024-03-25", domain.GranularityWeek, "2024-03-25"},
		{"2024-03-20", domain.GranularityMonth, "2024-03-01"},
		{"2024-02-29", domain.GranularityMonth, "2024-02-01"},
	}
	for _, tt := range tests {
		t.Run(string(tt.g)+"/"+tt.date, func(t *testing.T) {
			got := BucketStart(day(tt.date), tt.g)
			assert.Equal(t, tt.want, got.Format(domain.DateLayout))
		})
	}
}

func TestBucketKey(t *testing.T) {
	assert.Equal(t, "2024-03-18", BucketKey(day("2024-03-18"), domain.GranularityDay))
	assert.Equal(t, "2024-W12", BucketKey(day("2024-03-18"), domain.GranularityWeek))
	assert.Equal(t, "2025-W01", BucketKey(day("2024-12-30"), domain.GranularityWeek))
	assert.Equal(t, "2024-03", BucketKey(day("2024-03-01"), domain.GranularityMonth))
}

func TestBucketOrdersByStart(t *testing.T) {
	records := []domain.StatRecord{
		{Date: day("2024-02-10"), Impressions: 100, Clicks: 10, Cost: 5},
		{Date: day("2024-01-15"), Impressions: 200, Clicks: 4, Cost: 8},
		{Date: day("2024-02-01"), Impressions: 100, Clicks: 10, Cost: 15},
		{Date: day("2024-01-31"), Impressions: 200, Clicks: 6, Cost: 2},
	}

	got := Bucket(records, domain.GranularityMonth)

	require.Len(t, got, 2)
	assert.Equal(t, day("2024-01-01"), got[0].Start)
	assert.EqualValues(t, 2, got[0].Records)
	assert.InDelta(t, 10.0, got[0].Cost, 1e-9)
	assert.Equal(t, day("2024-02-01"), got[1].Start)
	assert.InDelta(t, 20.0, got[1].Cost, 1e-9)

	rows := SummarizePeriods(got, domain.GranularityMonth)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01", rows[0].Period)
	assert.Equal(t, "2024-02", rows[1].Period)
	assert.Equal(t, 2.5, *rows[0].AvgClickThroughRate)
	assert.Equal(t, 10.0, *rows[1].AvgClickThroughRate)
}

func TestBucketEmpty(t *testing.T) {
	assert.Empty(t, Bucket(nil, domain.GranularityDay))
	assert.NotNil(t, SummarizePeriods(nil, domain.GranularityDay))
}
