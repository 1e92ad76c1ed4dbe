package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"phish-analytics/internal/core/port"
	"phish-analytics/internal/metrics"
)

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router.
type Handler struct {
	analytics port.AnalyticsUseCase
	tracking  port.TrackingUseCase
	directory port.DirectoryUseCase
	logger    *slog.Logger
	router    chi.Router

	checks    []readinessCheck
	rateLimit func(http.Handler) http.Handler
}

type readinessCheck struct {
	name string
	p    Pinger
}

// Option customises a Handler.
type Option func(*Handler)

// WithReadiness adds a dependency to the /readyz probe.
func WithReadiness(name string, p Pinger) Option {
	return func(h *Handler) {
		h.checks = append(h.checks, readinessCheck{name: name, p: p})
	}
}

// WithRateLimit wraps every /api/v1 route with mw.
func WithRateLimit(mw func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.rateLimit = mw
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	analytics port.AnalyticsUseCase,
	tracking port.TrackingUseCase,
	directory port.DirectoryUseCase,
	logger *slog.Logger,
	opts ...Option,
) *Handler {
	h := &Handler{
		analytics: analytics,
		tracking:  tracking,
		directory: directory,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(collectMetrics)
	r.Use(h.recoverer)
	r.Use(securityHeaders)

	r.Get("/healthz", h.handleHealthz)
	r.Get("/readyz", h.handleReadyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if h.rateLimit != nil {
			r.Use(h.rateLimit)
		}

		r.Get("/analytics/departments", h.handleDepartmentReport)
		r.Get("/analytics/employees/{id}/timeline", h.handleEmployeeTimeline)

		r.Post("/events", h.handleLogEvent)
		r.Get("/events", h.handleListEvents)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns/{id}/send", h.handleSendCampaign)

		r.Get("/employees", h.handleListEmployees)
		r.Post("/employees/bulk", h.handleImportEmployees)
		r.Delete("/employees/{id}", h.handleDeleteEmployee)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
