// Package analytics computes performance rollups and period comparisons
// over stat records. Everything here is pure: repositories supply either
// raw records or full-precision domain.Totals and the functions in this
// package derive, round and compare.
package analytics

import (
	"math"

	"adperf/internal/core/domain"
)

// Accumulate folds records into full-precision totals.
func Accumulate(records []domain.StatRecord) domain.Totals {
	var (
		t              domain.Totals
		cpcSum, cpaSum float64
		cpcN, cpaN     int
	)
	for _, r := range records {
		t.Records++
		t.Cost += r.Cost
		t.Clicks += r.Clicks
		t.Conversions += r.Conversions
		t.Impressions += r.Impressions
		if r.Clicks != 0 {
			cpcSum += r.Cost / float64(r.Clicks)
			cpcN++
		}
		if r.Conversions != 0 {
			cpaSum += r.Cost / r.Conversions
			cpaN++
		}
	}
	if cpcN > 0 {
		t.AvgCostPerClick = ptr(cpcSum / float64(cpcN))
	}
	if cpaN > 0 {
		t.AvgCostPerConversion = ptr(cpaSum / float64(cpaN))
	}
	return t
}

// ClickThroughRate returns clicks/impressions as a fraction. It is nil for
// an empty set and 0 when the set has no impressions.
func ClickThroughRate(t domain.Totals) *float64 {
	if t.Records == 0 {
		return nil
	}
	if t.Impressions == 0 {
		return ptr(0)
	}
	return ptr(float64(t.Clicks) / float64(t.Impressions))
}

// ConversionRate returns conversions/clicks as a fraction. It is nil for an
// empty set and 0 when the set has no clicks.
func ConversionRate(t domain.Totals) *float64 {
	if t.Records == 0 {
		return nil
	}
	if t.Clicks == 0 {
		return ptr(0)
	}
	return ptr(t.Conversions / float64(t.Clicks))
}

// Summarize rounds totals for presentation. Rates are reported as
// percentages. An empty set yields a Summary with every field nil.
func Summarize(t domain.Totals) domain.Summary {
	if t.Records == 0 {
		return domain.Summary{}
	}
	clicks, impressions := t.Clicks, t.Impressions
	return domain.Summary{
		TotalCost:            ptr(Round(t.Cost)),
		TotalClicks:          &clicks,
		TotalConversions:     ptr(Round(t.Conversions)),
		TotalImpressions:     &impressions,
		AvgCostPerClick:      roundPtr(t.AvgCostPerClick),
		AvgCostPerConversion: roundPtr(t.AvgCostPerConversion),
		AvgClickThroughRate:  percentPtr(ClickThroughRate(t)),
		AvgConversionRate:    percentPtr(ConversionRate(t)),
	}
}

// Round rounds v to two decimal places, halves away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(Round(*v))
}

// percentPtr rescales a fraction to a rounded percentage.
func percentPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(Round(*v * 100))
}
