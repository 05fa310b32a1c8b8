package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// BackendRequestsTotal counts backend calls.
// Labels:
//   - resource: "auth", "categories", "posts", "users" or "audit"
//   - outcome: "ok", "unauthenticated", "network", "http" or "business"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of backend calls made by the console, by resource and outcome.",
	},
	[]string{"resource", "outcome"},
)

// BackendRequestDuration measures backend round trips that reached the network.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend calls made by the console.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)
