package domain

import "time"

// Totals holds full-precision aggregates over a set of stat records. It is
// what repositories return; rounding happens only when a Summary is built.
type Totals struct {
	// Records is the number of stat records aggregated. Zero means the set
	// was empty and every derived metric has no value.
	Records     int64
	Cost        float64
	Clicks      int64
	Conversions float64
	Impressions int64
	// AvgCostPerClick is the mean of cost/clicks over records with clicks,
	// nil when no record had any.
	AvgCostPerClick *float64
	// AvgCostPerConversion is the mean of cost/conversions over records
	// with conversions, nil when no record had any.
	AvgCostPerConversion *float64
}

// PeriodTotals are the totals of one time-series bucket.
type PeriodTotals struct {
	Start time.Time
	Totals
}

// Summary is the rounded presentation of Totals. Rates are percentages.
// A nil field means "no value", which is distinct from zero activity.
type Summary struct {
	TotalCost            *float64 `json:"total_cost"`
	TotalClicks          *int64   `json:"total_clicks"`
	TotalConversions     *float64 `json:"total_conversions"`
	TotalImpressions     *int64   `json:"total_impressions"`
	AvgCostPerClick      *float64 `json:"avg_cost_per_click"`
	AvgCostPerConversion *float64 `json:"avg_cost_per_conversion"`
	AvgClickThroughRate  *float64 `json:"avg_click_through_rate"`
	AvgConversionRate    *float64 `json:"avg_conversion_rate"`
}

// PeriodSummary is one row of a performance time series.
type PeriodSummary struct {
	Period string `json:"period"`
	Summary
}

// CampaignSummary is a campaign together with its ad group and cost rollups.
type CampaignSummary struct {
	CampaignID               int64    `json:"campaign_id"`
	CampaignName             string   `json:"campaign_name"`
	CampaignType             string   `json:"campaign_type"`
	AdGroupCount             int      `json:"ad_group_count"`
	AdGroupNames             []string `json:"ad_group_names"`
	AverageMonthlyCost       *float64 `json:"average_monthly_cost"`
	AverageCostPerConversion *float64 `json:"average_cost_per_conversion"`
}

// MetricChange compares one metric across two periods.
type MetricChange struct {
	Current          *float64 `json:"current"`
	Before           *float64 `json:"before"`
	PercentageChange *float64 `json:"percentage_change"`
}

// DateRange names the two periods of a comparison.
type DateRange struct {
	FromStartDate   string `json:"from_start_date"`
	FromEndDate     string `json:"from_end_date"`
	BeforeStartDate string `json:"before_start_date"`
	BeforeEndDate   string `json:"before_end_date"`
}

type ComparisonMetrics struct {
	TotalCost            MetricChange `json:"total_cost"`
	TotalClicks          MetricChange `json:"total_clicks"`
	TotalConversions     MetricChange `json:"total_conversions"`
	TotalImpressions     MetricChange `json:"total_impressions"`
	AvgCostPerClick      MetricChange `json:"avg_cost_per_click"`
	AvgCostPerConversion MetricChange `json:"avg_cost_per_conversion"`
	AvgClickThroughRate  MetricChange `json:"avg_click_through_rate"`
	AvgConversionRate    MetricChange `json:"avg_conversion_rate"`
}

// Comparison is the result of comparing performance across two periods.
type Comparison struct {
	DateRange DateRange         `json:"date_range"`
	Metrics   ComparisonMetrics `json:"metrics"`
}
