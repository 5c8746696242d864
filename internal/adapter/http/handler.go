package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adperf/internal/core/port"
	"adperf/internal/telemetry"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a ReportUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc         port.ReportUseCase
	logger      *slog.Logger
	metrics     *telemetry.Metrics
	metricsPath string
	router      chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithMetrics instruments every route and serves m on path.
func WithMetrics(m *telemetry.Metrics, path string) Option {
	return func(h *Handler) {
		h.metrics = m
		h.metricsPath = path
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ReportUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestID)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	r.Use(h.logRequests, h.recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Get("/campaigns", h.handleListCampaigns)
	r.Put("/campaign", h.handleRenameCampaign)
	r.Get("/performance-time-series", h.handlePerformanceTimeSeries)
	r.Get("/compare-performance", h.handleComparePerformance)
	if h.metrics != nil && h.metricsPath != "" {
		r.Method(http.MethodGet, h.metricsPath, h.metrics.Handler())
	}

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", slog.String("request_id", requestIDFrom(r.Context())), slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
