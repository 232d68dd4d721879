// Package metrics defines and registers all custom Prometheus metrics for
// the platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkforge"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
)

// GuardRedirectsTotal counts requests turned away by the route guard.
// Label:
//   - reason: "unauthenticated", "hydration_failed", "unverified", "role"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of route-guard redirects, by reason.",
	},
	[]string{"reason"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts placed orders.
// Label:
//   - kind: package kind ("link_building", "guest_posting")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed, by package kind.",
	},
	[]string{"kind"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityProcessedTotal counts audit events persisted successfully.
var ActivityProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_processed_total",
		Help:      "Total number of activity events successfully processed.",
	},
)

// ActivityErrorsTotal counts audit events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events that failed processing.",
	},
	[]string{"reason"},
)

// ActivityDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var ActivityDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ActivityQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
