package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adperf/internal/core/analytics"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
	"adperf/internal/core/port/mocks"
)

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestListCampaignsRollsUpAdGroups ensures each campaign is rolled up from
// the stats of all of its ad groups.
func TestListCampaignsRollsUpAdGroups(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)

	repo.EXPECT().
		ListCampaigns(mock.Anything).
		Return([]domain.Campaign{{ID: 1, Name: "Test Campaign", Type: "SEARCH"}}, nil)
	repo.EXPECT().
		ListAdGroupsByCampaign(mock.Anything, int64(1)).
		Return([]domain.AdGroup{{ID: 10, Name: "a", CampaignID: 1}, {ID: 11, Name: "b", CampaignID: 1}}, nil)
	repo.EXPECT().
		ListStatsByAdGroup(mock.Anything, int64(10)).
		Return([]domain.StatRecord{{Date: date("2024-01-05"), Cost: 30, Conversions: 2}}, nil)
	repo.EXPECT().
		ListStatsByAdGroup(mock.Anything, int64(11)).
		Return([]domain.StatRecord{{Date: date("2024-02-05"), Cost: 10, Conversions: 2}}, nil)

	svc := NewReportUseCase(repo)

	got, err := svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].AdGroupCount)
	assert.Equal(t, []string{"a", "b"}, got[0].AdGroupNames)
	assert.Equal(t, 20.0, *got[0].AverageMonthlyCost)
	assert.Equal(t, 10.0, *got[0].AverageCostPerConversion)
}

func TestListCampaignsEmpty(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)

	_, err := NewReportUseCase(repo).ListCampaigns(context.Background())
	assert.ErrorIs(t, err, port.ErrNoCampaigns)
}

func TestListCampaignsStoreError(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	boom := errors.New("connection reset")
	repo.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{{ID: 1}}, nil)
	repo.EXPECT().ListAdGroupsByCampaign(mock.Anything, int64(1)).Return(nil, boom)

	_, err := NewReportUseCase(repo).ListCampaigns(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRenameCampaign(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	repo.EXPECT().RenameCampaign(mock.Anything, int64(3), "Spring Sale").Return(nil)

	err := NewReportUseCase(repo).RenameCampaign(context.Background(), port.RenameReq{CampaignID: 3, NewName: "Spring Sale"})
	assert.NoError(t, err)
}

// TestRenameCampaignMissingFields ensures the store is never touched when a
// field is missing.
func TestRenameCampaignMissingFields(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	svc := NewReportUseCase(repo)

	for _, req := range []port.RenameReq{{NewName: "x"}, {CampaignID: 1}, {}} {
		err := svc.RenameCampaign(context.Background(), req)
		assert.ErrorIs(t, err, port.ErrInvalidInput)
	}
	repo.AssertNotCalled(t, "RenameCampaign", mock.Anything, mock.Anything, mock.Anything)
}

func TestRenameCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	repo.EXPECT().RenameCampaign(mock.Anything, int64(99), "x").Return(port.ErrCampaignNotFound)

	err := NewReportUseCase(repo).RenameCampaign(context.Background(), port.RenameReq{CampaignID: 99, NewName: "x"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestPerformanceTimeSeries(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	filter := domain.StatFilter{CampaignIDs: []int64{1, 2}, From: date("2024-03-01")}
	repo.EXPECT().
		AggregateStatsByPeriod(mock.Anything, filter, domain.GranularityWeek).
		Return([]domain.PeriodTotals{
			{Start: date("2024-03-04"), Totals: domain.Totals{Records: 2, Cost: 10.456, Clicks: 4, Impressions: 100}},
			{Start: date("2024-03-11"), Totals: domain.Totals{Records: 1, Cost: 3, Clicks: 1, Impressions: 50}},
		}, nil)

	rows, err := NewReportUseCase(repo).PerformanceTimeSeries(context.Background(), port.TimeSeriesReq{
		Granularity: domain.GranularityWeek,
		Filter:      filter,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-W10", rows[0].Period)
	assert.Equal(t, 10.46, *rows[0].TotalCost)
	assert.Equal(t, 4.0, *rows[0].AvgClickThroughRate)
	assert.Equal(t, "2024-W11", rows[1].Period)
}

func TestPerformanceTimeSeriesInvalidGranularity(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)

	_, err := NewReportUseCase(repo).PerformanceTimeSeries(context.Background(), port.TimeSeriesReq{Granularity: "hour"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

// TestComparePerformancePreceding ensures both periods are aggregated and
// the before period immediately precedes the requested one.
func TestComparePerformancePreceding(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	repo.EXPECT().
		AggregateStats(mock.Anything, domain.StatFilter{From: date("2024-03-15"), To: date("2024-03-20")}).
		Return(domain.Totals{Records: 6, Cost: 120, Clicks: 60, Impressions: 6000}, nil)
	repo.EXPECT().
		AggregateStats(mock.Anything, domain.StatFilter{From: date("2024-03-09"), To: date("2024-03-14")}).
		Return(domain.Totals{Records: 6, Cost: 100, Clicks: 50, Impressions: 5000}, nil)

	got, err := NewReportUseCase(repo).ComparePerformance(context.Background(), port.CompareReq{
		Period: domain.Period{Start: date("2024-03-15"), End: date("2024-03-20")},
		Mode:   domain.CompareModePreceding,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", got.DateRange.BeforeStartDate)
	assert.Equal(t, "2024-03-14", got.DateRange.BeforeEndDate)
	require.NotNil(t, got.Metrics.TotalCost.PercentageChange)
	assert.Equal(t, 20.0, *got.Metrics.TotalCost.PercentageChange)
	assert.Equal(t, 0.0, *got.Metrics.AvgClickThroughRate.PercentageChange)
}

func TestComparePerformanceRejectsBadInput(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	svc := NewReportUseCase(repo)

	_, err := svc.ComparePerformance(context.Background(), port.CompareReq{
		Period: domain.Period{Start: date("2024-03-20"), End: date("2024-03-15")},
		Mode:   domain.CompareModePreceding,
	})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = svc.ComparePerformance(context.Background(), port.CompareReq{
		Period: domain.Period{Start: date("2024-03-15"), End: date("2024-03-20")},
		Mode:   "weekly",
	})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = svc.ComparePerformance(context.Background(), port.CompareReq{
		Period: domain.Period{Start: date("2024-03-30"), End: date("2024-03-31")},
		Mode:   domain.CompareModePreviousMonth,
	})
	assert.ErrorIs(t, err, analytics.ErrPreviousMonthDate)
}

func TestComparePerformanceStoreError(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	boom := errors.New("timeout")
	repo.EXPECT().AggregateStats(mock.Anything, mock.Anything).Return(domain.Totals{}, boom)

	_, err := NewReportUseCase(repo).ComparePerformance(context.Background(), port.CompareReq{
		Period: domain.Period{Start: date("2024-03-15"), End: date("2024-03-20")},
		Mode:   domain.CompareModePreceding,
	})
	assert.ErrorIs(t, err, boom)
}
