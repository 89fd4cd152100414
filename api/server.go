/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Builds the chi router for the holiday service: middleware, the /api
  routes, and the operational endpoints.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests (read-only from any origin)

ROUTE GROUPS:
  /api/jurisdictions       Registry
  /api/holidays/*          Calendar, check and workday queries
  /api/custom-holidays/*   Custom holiday management
  /metrics                 Prometheus collectors (metrics/metrics.go)
  /healthz                 Liveness

SECURITY NOTE:
  No authentication middleware. Mutating endpoints should sit behind a
  reverse proxy that restricts them.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/holidays/serve.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/jurisdictions", h.ListJurisdictions)

		// Holiday routes
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListHolidays)
			r.Get("/check", h.CheckHoliday)
			r.Get("/workdays", h.Workdays)
		})

		// Custom holiday routes
		r.Route("/custom-holidays", func(r chi.Router) {
			r.Get("/", h.ListCustomHolidays)
			r.Post("/", h.CreateCustomHoliday)
			r.Delete("/{id}", h.DeleteCustomHoliday)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
