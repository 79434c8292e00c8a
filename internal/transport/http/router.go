// Package httptransport assembles the HTTP surface: middleware chain, public
// auth routes, the protected API group, and the operational endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rosterhub/internal/platform/metrics"
	"rosterhub/internal/platform/middleware"
	"rosterhub/internal/transport/http/shared"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries everything the router needs; main owns construction.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Sessions middleware.SessionValidator

	Auth      Registrar
	Protected []Registrar

	// HealthChecks are pinged by /health; any failure yields 503.
	HealthChecks map[string]func(ctx context.Context) error
}

// New wires all endpoints. Auth routes stay outside RequireSession: signup
// and login create sessions, and logout must succeed for unknown tokens.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))

	r.Get("/health", handleHealth(deps))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	deps.Auth.Register(r)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession(deps.Sessions, deps.Logger))
		for _, registrar := range deps.Protected {
			registrar.Register(protected)
		}
	})

	return r
}

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for name, check := range deps.HealthChecks {
			if err := check(ctx); err != nil {
				deps.Logger.ErrorContext(ctx, "health check failed",
					"check", name,
					"error", err.Error(),
				)
				shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
					"ok":     false,
					"failed": name,
				})
				return
			}
		}
		shared.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}
