package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

var (
	campaignTypes = []string{"SEARCH", "DISPLAY", "VIDEO", "SHOPPING"}
	devices       = []string{"desktop", "mobile", "tablet"}
)

// SeedOptions controls the size and shape of the demo data set.
type SeedOptions struct {
	Campaigns           int
	AdGroupsPerCampaign int
	// Days of stats generated, ending at End inclusive.
	Days int
	End  time.Time
	// Rand drives every generated value. Seed 1 is used when nil.
	Rand *rand.Rand
}

// DefaultSeedOptions covers the 90 days up to today.
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Campaigns:           5,
		AdGroupsPerCampaign: 3,
		Days:                90,
		End:                 domain.TruncateDay(time.Now()),
	}
}

// SeedResult reports how many rows Seed generated.
type SeedResult struct {
	Campaigns int
	AdGroups  int
	Stats     int
}

// Seed inserts demo campaigns, ad groups and one stat record per ad group,
// device and day through w. Ids start at 1, so seeding twice leaves
// campaigns and ad groups unchanged but adds stats again.
func Seed(ctx context.Context, w port.StatWriter, opts SeedOptions) (SeedResult, error) {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	end := domain.TruncateDay(opts.End)

	var (
		campaigns []domain.Campaign
		groups    []domain.AdGroup
		stats     []domain.StatRecord
	)
	for i := 1; i <= opts.Campaigns; i++ {
		c := domain.Campaign{
			ID:   int64(i),
			Name: fmt.Sprintf("Campaign %d", i),
			Type: campaignTypes[(i-1)%len(campaignTypes)],
		}
		campaigns = append(campaigns, c)

		for j := 1; j <= opts.AdGroupsPerCampaign; j++ {
			g := domain.AdGroup{
				ID:         int64((i-1)*opts.AdGroupsPerCampaign + j),
				Name:       fmt.Sprintf("Ad group %d.%d", i, j),
				CampaignID: c.ID,
			}
			groups = append(groups, g)

			for d := opts.Days - 1; d >= 0; d-- {
				day := end.AddDate(0, 0, -d)
				for _, device := range devices {
					stats = append(stats, randomStat(r, g.ID, device, day))
				}
			}
		}
	}

	if err := w.InsertCampaigns(ctx, campaigns); err != nil {
		return SeedResult{}, fmt.Errorf("insert campaigns: %w", err)
	}
	if err := w.InsertAdGroups(ctx, groups); err != nil {
		return SeedResult{}, fmt.Errorf("insert ad groups: %w", err)
	}
	if err := w.InsertStats(ctx, stats); err != nil {
		return SeedResult{}, fmt.Errorf("insert stats: %w", err)
	}
	return SeedResult{Campaigns: len(campaigns), AdGroups: len(groups), Stats: len(stats)}, nil
}

func randomStat(r *rand.Rand, adGroupID int64, device string, day time.Time) domain.StatRecord {
	impressions := int64(200 + r.Intn(1800))
	clicks := int64(r.Intn(int(impressions/10) + 1))
	var conversions float64
	if clicks > 0 {
		// fractional conversions come from attribution models
		conversions = float64(r.Intn(int(clicks)+1)) * (0.5 + r.Float64()/2)
	}
	cost := float64(clicks)*(0.2+r.Float64()*1.8) + float64(impressions)*0.001
	return domain.StatRecord{
		Date:        day,
		AdGroupID:   adGroupID,
		Device:      device,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Cost:        cost,
	}
}
