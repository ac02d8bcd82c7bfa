// Package telemetry exposes the engine's Prometheus metrics, built on
// github.com/prometheus/client_golang. Everything here is registered
// against a private registry rather than the global default one, so
// importing conjecture never mutates a host process's /metrics endpoint
// unless the caller explicitly asks for this registry via Registry().
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

var registry = prometheus.NewRegistry()

// ExamplesTotal counts every predicate run performed by the search
// loop, labeled by outcome ("pass", "counterexample", "overrun").
var ExamplesTotal = register(prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "conjecture_examples_total",
		Help: "Predicate runs performed by the search loop, by outcome.",
	},
	[]string{"outcome"},
))

// ShrinkAttemptsTotal counts every candidate evaluated by the shrinker,
// labeled by pass name and outcome ("adopted", "rejected"). Candidates
// skipped by the dedup cache are not evaluated and not counted.
var ShrinkAttemptsTotal = register(prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "conjecture_shrink_attempts_total",
		Help: "Shrink candidates evaluated, by pass and outcome.",
	},
	[]string{"pass", "outcome"},
))

// ShrinkBudgetRemaining is set on every shrink evaluation to the number
// of predicate evaluations still available in the current session.
var ShrinkBudgetRemaining = register(prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "conjecture_shrink_budget_remaining",
		Help: "Remaining shrink-evaluation budget in the current session.",
	},
))

// PredicateDuration observes the wall-clock cost of a single predicate
// invocation during search and shrinking: every call to Run records one
// observation here. Replay does not go through Run and records nothing.
var PredicateDuration = register(prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "conjecture_predicate_duration_seconds",
		Help:    "Wall-clock duration of a single predicate invocation.",
		Buckets: prometheus.DefBuckets,
	},
))

// Registry returns the private registry everything above is registered
// against, for callers that want to expose it on their own /metrics
// handler.
func Registry() *prometheus.Registry { return registry }

func register[C prometheus.Collector](c C) C {
	registry.MustRegister(c)
	return c
}
