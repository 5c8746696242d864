package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

const (
	msgBadAggregate   = "aggregate_by must be one of: day, week, month."
	msgInvalidCompare = "Invalid compare request."
)

// handlePerformanceTimeSeries returns metrics bucketed by aggregate_by
// (day, week or month). campaigns restricts the result to a comma-separated
// list of campaign ids; start_date and end_date bound it inclusively.
func (h *Handler) handlePerformanceTimeSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	aggregateBy := q.Get("aggregate_by")
	if aggregateBy == "" {
		h.reject(w, r, keyError, "aggregate_by parameter is required.")
		return
	}
	req := port.TimeSeriesReq{Granularity: domain.Granularity(aggregateBy)}
	if !req.Granularity.Valid() {
		h.reject(w, r, keyError, msgBadAggregate)
		return
	}

	if param := q.Get("campaigns"); param != "" {
		ids, err := parseIDs(param)
		if err != nil {
			h.reject(w, r, keyError, "Invalid format for campaigns parameter. Must be comma-separated integers.")
			return
		}
		req.Filter.CampaignIDs = ids
	}

	var err error
	if s := q.Get("start_date"); s != "" {
		if req.Filter.From, err = domain.ParseDate(s); err != nil {
			h.reject(w, r, keyError, "Invalid start_date format. Use YYYY-MM-DD.")
			return
		}
	}
	if s := q.Get("end_date"); s != "" {
		if req.Filter.To, err = domain.ParseDate(s); err != nil {
			h.reject(w, r, keyError, "Invalid end_date format. Use YYYY-MM-DD.")
			return
		}
	}

	series, err := h.svc.PerformanceTimeSeries(r.Context(), req)
	if err != nil {
		h.fail(w, r, keyError, msgBadAggregate, err)
		return
	}
	h.writeJSON(w, http.StatusOK, series)
}

// handleComparePerformance compares start_date..end_date with the period
// selected by compare_mode.
func (h *Handler) handleComparePerformance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startStr, endStr := q.Get("start_date"), q.Get("end_date")
	if startStr == "" || endStr == "" {
		h.reject(w, r, keyError, "start_date and end_date parameters are required.")
		return
	}

	req := port.CompareReq{Mode: domain.CompareMode(q.Get("compare_mode"))}
	if !req.Mode.Valid() {
		h.reject(w, r, keyError, `Invalid compare_mode. Must be "preceding" or "previous_month".`)
		return
	}

	var err1, err2 error
	req.Period.Start, err1 = domain.ParseDate(startStr)
	req.Period.End, err2 = domain.ParseDate(endStr)
	if err1 != nil || err2 != nil {
		h.reject(w, r, keyError, "Invalid date format. Use YYYY-MM-DD.")
		return
	}
	if !req.Period.Valid() {
		h.reject(w, r, keyError, "start_date must be before or equal to end_date.")
		return
	}

	cmp, err := h.svc.ComparePerformance(r.Context(), req)
	if err != nil {
		h.fail(w, r, keyError, msgInvalidCompare, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cmp)
}

func parseIDs(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
