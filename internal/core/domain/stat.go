package domain

import "time"

// StatRecord is the performance of one ad group on one device for one day.
// Conversions may be fractional. Cost is in currency units.
type StatRecord struct {
	ID          int64
	Date        time.Time // calendar date, midnight UTC
	AdGroupID   int64
	Device      string
	Impressions int64
	Clicks      int64
	Conversions float64
	Cost        float64
}

// StatFilter selects stat records. An empty CampaignIDs slice matches every
// campaign and a zero From or To leaves that side of the range open. Both
// bounds are inclusive.
type StatFilter struct {
	CampaignIDs []int64
	From        time.Time
	To          time.Time
}

// Match reports whether a record dated d under campaignID passes the filter.
func (f StatFilter) Match(campaignID int64, d time.Time) bool {
	if !f.From.IsZero() && d.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && d.After(f.To) {
		return false
	}
	if len(f.CampaignIDs) == 0 {
		return true
	}
	for _, id := range f.CampaignIDs {
		if id == campaignID {
			return true
		}
	}
	return false
}
