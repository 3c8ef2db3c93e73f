// Package metrics defines and registers all custom Prometheus metrics for the
// collection coordination API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "collection"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// LocationsCreatedTotal counts newly registered collection points.
var LocationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "locations_created_total",
		Help:      "Total number of collection points registered.",
	},
)

// LocationsUpdatedTotal counts full-replacement updates of collection points.
var LocationsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "locations_updated_total",
		Help:      "Total number of collection point updates.",
	},
)

// LocationsDeletedTotal counts delete operations that completed, including
// no-op deletes of ids that did not exist.
var LocationsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "locations_deleted_total",
		Help:      "Total number of collection point delete operations.",
	},
)

// LocationCacheTotal counts list-cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to the store)
var LocationCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_cache_total",
		Help:      "Total number of location list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
