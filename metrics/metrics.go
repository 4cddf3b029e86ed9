package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant_directory"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by service, method, route and status.",
		},
		[]string{"service", "method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by service, method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)

	TokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_verifications_total",
			Help:      "Total number of token verification attempts by kind and result.",
		},
		[]string{"kind", "result"},
	)

	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	})

	TokenRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Total number of successful token refreshes, split by whether the refresh token was rotated.",
		},
		[]string{"rotated"},
	)

	MenuBulkSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_bulk_saves_total",
			Help:      "Total number of menu bulk-replace attempts by result.",
		},
		[]string{"result"},
	)
)
