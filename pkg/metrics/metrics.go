package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	transplantPlanner = "transplant_planner"

	projectionsComputedTotal = "projections_computed_total"
	sensitivityRunsTotal     = "sensitivity_runs_total"

	// Labels
	triggerLabel = "trigger"
)

var projectionTriggerLabels = []string{
	triggerLabel,
}

/**
* Metrics definition
**/
var projectionsComputedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: transplantPlanner,
		Name:      projectionsComputedTotal,
		Help:      "number of projection engine runs by trigger (projection, summary, report)",
	},
	projectionTriggerLabels,
)

var sensitivityRunsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: transplantPlanner,
		Name:      sensitivityRunsTotal,
		Help:      "number of three-pass sensitivity analyses",
	},
)

func IncreaseProjectionsComputedMetric(trigger string) {
	labels := prometheus.Labels{
		triggerLabel: trigger,
	}
	projectionsComputedTotalMetric.With(labels).Inc()
}

func IncreaseSensitivityRunsMetric() {
	sensitivityRunsTotalMetric.Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(projectionsComputedTotalMetric)
	prometheus.MustRegister(sensitivityRunsTotalMetric)
}
