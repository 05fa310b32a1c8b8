// Package metrics defines and registers the custom Prometheus metrics of the
// mock backend. It is the single source of truth for metric names, labels and
// help strings.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mockapi"

// --- Moderation metrics ---

// ModerationActionsTotal counts successful moderation mutations.
// Label:
//   - action: "category_create", "category_delete", "post_approved",
//     "post_rejected", "post_pending", "user_banned" or "user_active"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of successful moderation actions, by action.",
	},
	[]string{"action"},
)

// --- Audit metrics ---

// AuditQueueDepth tracks the number of audit entries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditErrorsTotal counts audit entries that were dropped or failed to persist.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit entries that could not be persisted.",
	},
)

// AuditObserver feeds dispatcher telemetry into the audit metrics.
type AuditObserver struct{}

func (AuditObserver) QueueDepth(workerID, depth int) {
	AuditQueueDepth.WithLabelValues(strconv.Itoa(workerID)).Set(float64(depth))
}

func (AuditObserver) ProcessFailed() {
	AuditErrorsTotal.Inc()
}
