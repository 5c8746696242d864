package analytics

import "adperf/internal/core/domain"

// RollupCampaign summarises a campaign from its ad groups and all of their
// stat records. Average monthly cost divides the total cost by the number of
// distinct calendar months the stats touch. Both averages are nil when their
// denominator is zero.
func RollupCampaign(c domain.Campaign, groups []domain.AdGroup, stats []domain.StatRecord) domain.CampaignSummary {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}

	var cost, conversions float64
	months := make(map[string]struct{})
	for _, s := range stats {
		cost += s.Cost
		conversions += s.Conversions
		months[s.Date.Format("2006-01")] = struct{}{}
	}

	summary := domain.CampaignSummary{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		CampaignType: c.Type,
		AdGroupCount: len(groups),
		AdGroupNames: names,
	}
	if len(months) > 0 {
		summary.AverageMonthlyCost = ptr(Round(cost / float64(len(months))))
	}
	if conversions > 0 {
		summary.AverageCostPerConversion = ptr(Round(cost / conversions))
	}
	return summary
}
