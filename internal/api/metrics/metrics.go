// Package metrics defines and registers the custom Prometheus metrics for the
// auth API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// SignupsTotal counts sign-up attempts by outcome.
// Label:
//   - result: "created", "invalid", "conflict", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, labelled by result.",
	},
	[]string{"result"},
)

// SigninsTotal counts sign-in attempts by outcome.
// Label:
//   - result: "success", "invalid", "not_found", "unauthorized", or "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, labelled by result.",
	},
	[]string{"result"},
)

// SignoutsTotal counts sign-out requests. Sign-out is unconditional, so there
// is no result label.
var SignoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signouts_total",
		Help:      "Total number of sign-out requests.",
	},
)
