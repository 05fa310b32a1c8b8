// Package metrics defines the Prometheus metrics of the console web server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// WorkspacesActive is the number of browser workspaces held in memory.
var WorkspacesActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "workspaces_active",
		Help:      "Current number of browser workspaces held by the console.",
	},
)

// LoginsTotal counts sign-in attempts.
// Label:
//   - outcome: "ok", "invalid" (form rejected before any request) or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of console sign-in attempts, by outcome.",
	},
	[]string{"outcome"},
)
