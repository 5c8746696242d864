package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"adperf/internal/adapter/usecase"
	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// reportMetrics selects one series of a time series by its JSON name.
var reportMetrics = map[string]func(domain.Summary) *float64{
	"total_cost":              func(s domain.Summary) *float64 { return s.TotalCost },
	"total_clicks":            func(s domain.Summary) *float64 { return intPtr(s.TotalClicks) },
	"total_conversions":       func(s domain.Summary) *float64 { return s.TotalConversions },
	"total_impressions":       func(s domain.Summary) *float64 { return intPtr(s.TotalImpressions) },
	"avg_cost_per_click":      func(s domain.Summary) *float64 { return s.AvgCostPerClick },
	"avg_cost_per_conversion": func(s domain.Summary) *float64 { return s.AvgCostPerConversion },
	"avg_click_through_rate":  func(s domain.Summary) *float64 { return s.AvgClickThroughRate },
	"avg_conversion_rate":     func(s domain.Summary) *float64 { return s.AvgConversionRate },
}

func intPtr(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

type reportFlags struct {
	aggregateBy string
	metric      string
	campaigns   string
	startDate   string
	endDate     string
	height      int
}

func newReportCmd(a *app) *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Plot one metric of the performance time series in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pick, ok := reportMetrics[f.metric]
			if !ok {
				return fmt.Errorf("unknown metric %q", f.metric)
			}
			req, err := f.request()
			if err != nil {
				return err
			}

			store, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			series, err := usecase.NewReportUseCase(store).PerformanceTimeSeries(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderReport(cmd.OutOrStdout(), f, series, pick)
		},
	}
	cmd.Flags().StringVar(&f.aggregateBy, "aggregate-by", string(domain.GranularityDay), "bucket width: day, week or month")
	cmd.Flags().StringVar(&f.metric, "metric", "total_cost", "metric to plot")
	cmd.Flags().StringVar(&f.campaigns, "campaigns", "", "comma-separated campaign ids")
	cmd.Flags().StringVar(&f.startDate, "start-date", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.endDate, "end-date", "", "last day, YYYY-MM-DD")
	cmd.Flags().IntVar(&f.height, "height", 10, "plot height in rows")
	return cmd
}

func (f reportFlags) request() (port.TimeSeriesReq, error) {
	req := port.TimeSeriesReq{Granularity: domain.Granularity(f.aggregateBy)}
	if f.campaigns != "" {
		for _, p := range strings.Split(f.campaigns, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return req, fmt.Errorf("campaigns: %w", err)
			}
			req.Filter.CampaignIDs = append(req.Filter.CampaignIDs, id)
		}
	}
	var err error
	if f.startDate != "" {
		if req.Filter.From, err = domain.ParseDate(f.startDate); err != nil {
			return req, fmt.Errorf("start-date: %w", err)
		}
	}
	if f.endDate != "" {
		if req.Filter.To, err = domain.ParseDate(f.endDate); err != nil {
			return req, fmt.Errorf("end-date: %w", err)
		}
	}
	return req, nil
}

// renderReport prints a titled table of the series and, when there are at
// least two buckets, a line plot. Missing values are gaps in the plot.
func renderReport(w io.Writer, f reportFlags, series []domain.PeriodSummary, pick func(domain.Summary) *float64) error {
	title := fmt.Sprintf("%s by %s", f.metric, f.aggregateBy)
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if len(series) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("No data available"))
		return err
	}

	data := make([]float64, len(series))
	var b strings.Builder
	for i, p := range series {
		v := pick(p.Summary)
		if v == nil {
			data[i] = math.NaN()
			fmt.Fprintf(&b, "%-10s %12s\n", p.Period, "-")
			continue
		}
		data[i] = *v
		fmt.Fprintf(&b, "%-10s %12.2f\n", p.Period, *v)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if len(series) < 2 {
		return nil
	}
	plot := asciigraph.Plot(data,
		asciigraph.Height(max(f.height, 3)),
		asciigraph.Caption(fmt.Sprintf("%s .. %s", series[0].Period, series[len(series)-1].Period)),
	)
	_, err := fmt.Fprintln(w, plot)
	return err
}
