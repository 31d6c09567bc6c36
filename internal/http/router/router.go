package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-gas-delivery/internal/http/handlers"
	obs "service-gas-delivery/internal/http/middleware"
	"service-gas-delivery/internal/http/middleware/ratelimit"
	"service-gas-delivery/internal/logx"
)

const requestTimeout = 5 * time.Second

// New constructs a chi-based http.Handler with base middleware and routes.
// WebSocket routes are mounted outside the request timeout.
func New(
	logger logx.Logger,
	rl *ratelimit.Middleware,
	h *handlers.Handlers,
	customer *handlers.CustomerHandler,
	driver *handlers.DriverHandler,
	admin *handlers.AdminHandler,
	live *handlers.LiveHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(logger))
	r.Use(middleware.Recoverer)
	if rl != nil {
		r.Use(rl.Handler())
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(h.NotFound))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/pricing", customer.Pricing)
		r.Post("/quotes", customer.Quote)
		r.Get("/drivers/nearby", customer.Nearby)
		r.Post("/requests", customer.Create)
		r.Get("/requests/{id}/tracking", customer.Track)
		r.Post("/requests/{id}/cancel", customer.Cancel)

		r.Route("/drivers/{id}", func(r chi.Router) {
			r.Put("/location", driver.UpdateLocation)
			r.Post("/heartbeat", driver.Heartbeat)
			r.Put("/status", driver.SetStatus)
			r.Get("/requests", driver.ActiveRequests)
			r.Post("/requests/{requestID}/deliver", driver.Deliver)
			r.Get("/stats", driver.Stats)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/drivers", admin.Drivers)
			r.Post("/drivers", admin.CreateDriver)
			r.Delete("/drivers/{id}", admin.DeleteDriver)
			r.Put("/pricing", admin.UpdatePricing)
			r.Put("/pricing/availability", admin.SetAvailability)
			r.Get("/reports/deliveries", admin.Report)
		})
	})

	if live != nil {
		r.Get("/ws/requests/{id}", live.Request)
		r.Get("/ws/drivers/{id}", live.Driver)
		r.Get("/ws/admin", live.Admin)
	}

	return r
}
