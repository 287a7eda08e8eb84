// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// AuthFailuresTotal counts rejected protected requests.
// Label:
//   - reason: "missing_credential", "expired", "invalid", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth gate.",
	},
	[]string{"reason"},
)

// RequestsThrottledTotal counts requests rejected by the API rate limiter.
var RequestsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_throttled_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)

// OrdersCreatedTotal counts checkout orders accepted by the API.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// ContactMessagesTotal counts contact form submissions (logged, not stored).
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact form submissions received.",
	},
)

// StatsDuration measures how long one admin dashboard aggregation takes,
// including all fan-out reads.
// Label:
//   - kind: "dashboard" or "charts"
var StatsDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "admin_stats_duration_seconds",
		Help:      "Duration of admin statistics aggregation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)
