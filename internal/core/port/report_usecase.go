package port

import (
	"context"

	"adperf/internal/core/domain"
)

// ReportUseCase defines the reporting operations exposed to inbound
// adapters. This interface represents the primary port into the application
// domain.
type ReportUseCase interface {
	// ListCampaigns returns every campaign with its ad group and cost
	// rollups. It returns ErrNoCampaigns when the store holds none.
	ListCampaigns(ctx context.Context) ([]domain.CampaignSummary, error)

	// RenameCampaign changes a campaign's name. Missing fields produce
	// ErrInvalidInput and an unknown id ErrCampaignNotFound.
	RenameCampaign(ctx context.Context, req RenameReq) error

	// PerformanceTimeSeries returns bucketed performance ordered by bucket.
	PerformanceTimeSeries(ctx context.Context, req TimeSeriesReq) ([]domain.PeriodSummary, error)

	// ComparePerformance compares a period with the one derived from the
	// requested mode.
	ComparePerformance(ctx context.Context, req CompareReq) (*domain.Comparison, error)

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}

type RenameReq struct {
	CampaignID int64
	NewName    string
}

type TimeSeriesReq struct {
	Granularity domain.Granularity
	Filter      domain.StatFilter
}

type CompareReq struct {
	Period domain.Period
	Mode   domain.CompareMode
}
