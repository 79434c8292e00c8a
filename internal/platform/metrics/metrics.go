package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersCreated    prometheus.Counter
	Logins          prometheus.Counter
	LoginFailures   prometheus.Counter
	ItemsCreated    prometheus.Counter
	ItemsDeleted    prometheus.Counter
	Assignments     prometheus.Counter
	RequestsCreated prometheus.Counter

	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on reg. Passing a private
// registry keeps tests from tripping duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterhub_users_created_total",
			Help: "Total number of users created in the system",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterhub_logins_total",
			Help: "Total number of successful logins",
		}),
		LoginFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterhub_login_failures_total",
			Help: "Total number of rejected login attempts",
		}),
		ItemsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterhub_items_created_total",
			Help: "Total number of inventory items created",
		}),
		ItemsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterhub_items_deleted_total",
			Help: "Total number of inventory items deleted",
		}),
		Assignments: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterhub_service_assignments_total",
			Help: "Total number of person-service assignments recorded",
		}),
		RequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "rosterhub_requests_created_total",
			Help: "Total number of help and donation requests submitted",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rosterhub_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by route and status",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}
