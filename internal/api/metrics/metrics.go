// Package metrics defines and registers all custom Prometheus metrics for the
// profile service. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "profile"

// ProfileUpdatesTotal counts profile update requests by outcome.
// Label:
//   - result: "ok", "invalid", or "error"
var ProfileUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_total",
		Help:      "Total number of profile update requests, by result.",
	},
	[]string{"result"},
)

// UpgradesTotal counts professional upgrade requests by outcome.
// Label:
//   - result: "ok" or "error"
var UpgradesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upgrades_total",
		Help:      "Total number of professional upgrade requests, by result.",
	},
	[]string{"result"},
)

// NotificationsCreatedTotal counts upgrade notifications written to the store.
var NotificationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of upgrade notifications persisted.",
	},
)

// AuthFailuresTotal counts rejected requests at the authentication gate.
// Label:
//   - reason: "missing_header" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the bearer token resolver.",
	},
	[]string{"reason"},
)
