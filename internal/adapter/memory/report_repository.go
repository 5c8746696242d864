// Package memory implements the reporting store in process memory. It backs
// tests and the demo mode of the service and aggregates with the same
// analytics code that derives metrics from SQL totals.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"adperf/internal/core/analytics"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// ReportRepository implements port.Store with maps guarded by a RWMutex.
type ReportRepository struct {
	mu        sync.RWMutex
	campaigns map[int64]domain.Campaign
	adGroups  map[int64]domain.AdGroup
	stats     []domain.StatRecord
	nextID    int64
}

// NewReportRepository returns an empty repository.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		campaigns: make(map[int64]domain.Campaign),
		adGroups:  make(map[int64]domain.AdGroup),
	}
}

var _ port.Store = (*ReportRepository)(nil)

// ListCampaigns returns every campaign ordered by id.
func (r *ReportRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// RenameCampaign updates the name of an existing campaign.
func (r *ReportRepository) RenameCampaign(_ context.Context, id int64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return port.ErrCampaignNotFound
	}
	c.Name = name
	r.campaigns[id] = c
	return nil
}

// ListAdGroupsByCampaign returns the ad groups of a campaign ordered by id.
func (r *ReportRepository) ListAdGroupsByCampaign(_ context.Context, campaignID int64) ([]domain.AdGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AdGroup
	for _, g := range r.adGroups {
		if g.CampaignID == campaignID {
			out = append(out, g)
		}
	}
	slices.SortFunc(out, func(a, b domain.AdGroup) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// ListStatsByAdGroup returns the stat records of an ad group ordered by date.
func (r *ReportRepository) ListStatsByAdGroup(_ context.Context, adGroupID int64) ([]domain.StatRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.StatRecord
	for _, s := range r.stats {
		if s.AdGroupID == adGroupID {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.StatRecord) int { return a.Date.Compare(b.Date) })
	return out, nil
}

// AggregateStats accumulates the filtered records.
func (r *ReportRepository) AggregateStats(_ context.Context, filter domain.StatFilter) (domain.Totals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return analytics.Accumulate(r.filter(filter)), nil
}

// AggregateStatsByPeriod buckets and accumulates the filtered records.
func (r *ReportRepository) AggregateStatsByPeriod(_ context.Context, filter domain.StatFilter, g domain.Granularity) ([]domain.PeriodTotals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return analytics.Bucket(r.filter(filter), g), nil
}

// Ping always succeeds.
func (r *ReportRepository) Ping(context.Context) error {
	return nil
}

// InsertCampaigns stores campaigns, skipping ids that already exist.
func (r *ReportRepository) InsertCampaigns(_ context.Context, campaigns []domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range campaigns {
		if _, ok := r.campaigns[c.ID]; !ok {
			r.campaigns[c.ID] = c
		}
	}
	return nil
}

// InsertAdGroups stores ad groups, skipping ids that already exist. Every
// ad group must reference a stored campaign.
func (r *ReportRepository) InsertAdGroups(_ context.Context, groups []domain.AdGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range groups {
		if _, ok := r.campaigns[g.CampaignID]; !ok {
			return fmt.Errorf("ad group %d: campaign %d does not exist", g.ID, g.CampaignID)
		}
	}
	for _, g := range groups {
		if _, ok := r.adGroups[g.ID]; !ok {
			r.adGroups[g.ID] = g
		}
	}
	return nil
}

// InsertStats appends stat records and assigns their ids. Every record
// must reference a stored ad group.
func (r *ReportRepository) InsertStats(_ context.Context, stats []domain.StatRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range stats {
		if _, ok := r.adGroups[s.AdGroupID]; !ok {
			return fmt.Errorf("stat record: ad group %d does not exist", s.AdGroupID)
		}
	}
	for _, s := range stats {
		r.nextID++
		s.ID = r.nextID
		s.Date = domain.TruncateDay(s.Date)
		r.stats = append(r.stats, s)
	}
	return nil
}

// filter must be called with the read lock held.
func (r *ReportRepository) filter(f domain.StatFilter) []domain.StatRecord {
	var out []domain.StatRecord
	for _, s := range r.stats {
		if f.Match(r.adGroups[s.AdGroupID].CampaignID, s.Date) {
			out = append(out, s)
		}
	}
	return out
}
