package port

import (
	"context"
	"errors"

	"adperf/internal/core/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNoCampaigns      = errors.New("no campaigns found")
	ErrInvalidInput     = errors.New("invalid input")
)

// ReportRepository defines the read side of the reporting store plus the
// single rename write. It is an outbound port in hexagonal architecture.
//
//go:generate mockery --name ReportRepository --with-expecter --outpkg mocks --output ./mocks --filename mock_report_repository.go --structname MockReportRepository
type ReportRepository interface {
	// ListCampaigns returns every campaign ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// RenameCampaign sets a campaign's name atomically. It returns
	// ErrCampaignNotFound when no campaign has the given id.
	RenameCampaign(ctx context.Context, id int64, name string) error
	// ListAdGroupsByCampaign returns the ad groups of a campaign ordered by id.
	ListAdGroupsByCampaign(ctx context.Context, campaignID int64) ([]domain.AdGroup, error)
	// ListStatsByAdGroup returns the stat records of an ad group ordered by date.
	ListStatsByAdGroup(ctx context.Context, adGroupID int64) ([]domain.StatRecord, error)
	// AggregateStats returns full-precision totals over the filtered records.
	AggregateStats(ctx context.Context, filter domain.StatFilter) (domain.Totals, error)
	// AggregateStatsByPeriod returns totals per g-wide bucket of the filtered
	// records, ordered by bucket start. Weeks start on Monday.
	AggregateStatsByPeriod(ctx context.Context, filter domain.StatFilter, g domain.Granularity) ([]domain.PeriodTotals, error)
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// StatWriter bulk loads campaigns, ad groups and stats. Campaigns and ad
// groups that already exist are left untouched.
type StatWriter interface {
	InsertCampaigns(ctx context.Context, campaigns []domain.Campaign) error
	InsertAdGroups(ctx context.Context, groups []domain.AdGroup) error
	InsertStats(ctx context.Context, stats []domain.StatRecord) error
}

// Store is a repository that can also be bulk loaded.
type Store interface {
	ReportRepository
	StatWriter
}
