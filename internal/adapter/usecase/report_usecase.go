package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"adperf/internal/core/analytics"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// ReportUseCase provides the reporting business logic. It orchestrates the
// repository and the analytics package to implement port.ReportUseCase.
type ReportUseCase struct {
	repo port.ReportRepository
}

// NewReportUseCase creates a new usecase backed by the given repository.
func NewReportUseCase(repo port.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// ListCampaigns returns every campaign with its rollups. Ad groups and
// their stats are loaded with one query per ad group, which keeps the
// rollup arithmetic independent of the store.
func (u *ReportUseCase) ListCampaigns(ctx context.Context) ([]domain.CampaignSummary, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, port.ErrNoCampaigns
	}

	out := make([]domain.CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		groups, err := u.repo.ListAdGroupsByCampaign(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list ad groups of campaign %d: %w", c.ID, err)
		}
		var stats []domain.StatRecord
		for _, g := range groups {
			s, err := u.repo.ListStatsByAdGroup(ctx, g.ID)
			if err != nil {
				return nil, fmt.Errorf("list stats of ad group %d: %w", g.ID, err)
			}
			stats = append(stats, s...)
		}
		out = append(out, analytics.RollupCampaign(c, groups, stats))
	}
	return out, nil
}

// RenameCampaign changes the name of an existing campaign. Concurrent
// renames of the same campaign resolve to whichever commits last.
func (u *ReportUseCase) RenameCampaign(ctx context.Context, req port.RenameReq) error {
	if req.CampaignID == 0 || req.NewName == "" {
		return fmt.Errorf("%w: campaign_id and new_name are required", port.ErrInvalidInput)
	}
	return u.repo.RenameCampaign(ctx, req.CampaignID, req.NewName)
}

// PerformanceTimeSeries returns the filtered stats bucketed by day, week or
// month.
func (u *ReportUseCase) PerformanceTimeSeries(ctx context.Context, req port.TimeSeriesReq) ([]domain.PeriodSummary, error) {
	if !req.Granularity.Valid() {
		return nil, fmt.Errorf("%w: unsupported granularity %q", port.ErrInvalidInput, req.Granularity)
	}
	periods, err := u.repo.AggregateStatsByPeriod(ctx, req.Filter, req.Granularity)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats by %s: %w", req.Granularity, err)
	}
	return analytics.SummarizePeriods(periods, req.Granularity), nil
}

// ComparePerformance aggregates the requested period and the one derived
// from req.Mode concurrently, then compares them metric by metric.
func (u *ReportUseCase) ComparePerformance(ctx context.Context, req port.CompareReq) (*domain.Comparison, error) {
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: unsupported compare mode %q", port.ErrInvalidInput, req.Mode)
	}
	if !req.Period.Valid() {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidInput, analytics.ErrInvalidPeriod)
	}
	before, err := analytics.BeforePeriod(req.Period, req.Mode)
	if err != nil {
		return nil, err
	}

	var current, previous domain.Totals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if current, err = u.repo.AggregateStats(gctx, req.Period.Filter()); err != nil {
			return fmt.Errorf("aggregate current period: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if previous, err = u.repo.AggregateStats(gctx, before.Filter()); err != nil {
			return fmt.Errorf("aggregate before period: %w", err)
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	c := analytics.Compare(req.Period, before, current, previous)
	return &c, nil
}

// Ping checks the store.
func (u *ReportUseCase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}
