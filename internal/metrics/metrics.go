// Package metrics exposes prometheus collectors for the planner and the
// execute loop.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Expansions counts tree nodes added across all planning episodes.
	Expansions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ropeplan_tree_expansions_total",
		Help: "Tree nodes added during planning.",
	})

	// ClassifierRejections counts transitions rejected by the feasibility
	// classifier (divergence bookkeeping, not errors).
	ClassifierRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ropeplan_classifier_rejections_total",
		Help: "Transitions rejected by the feasibility classifier.",
	})

	// PredictionFailures counts dynamics-model failures that pruned a
	// candidate transition.
	PredictionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ropeplan_prediction_failures_total",
		Help: "Dynamics model failures during propagation.",
	})

	// PrunedBranches counts branches discarded at the divergence horizon.
	PrunedBranches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ropeplan_pruned_branches_total",
		Help: "Branches pruned at the classifier divergence horizon.",
	})

	// Plans counts completed planning episodes by status.
	Plans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ropeplan_plans_total",
		Help: "Completed planning episodes by terminal status.",
	}, []string{"status"})

	// PlanningSeconds observes wall-clock planning time per episode.
	PlanningSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ropeplan_planning_seconds",
		Help:    "Wall-clock planning time per episode.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	// Replans counts execution-divergence replanning events.
	Replans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ropeplan_execution_replans_total",
		Help: "Replans triggered by execution divergence.",
	})
)
