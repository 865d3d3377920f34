// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRouteMetrics() {
	r.RouteQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusnav_route_queries_total",
			Help: "Total number of route queries by outcome",
		},
		[]string{"outcome"},
	)

	r.RouteDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campusnav_route_duration_seconds",
			Help:    "Route search duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
	)

	r.RouteSettledNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campusnav_route_settled_nodes",
			Help:    "Number of nodes expanded per route search",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		},
	)

	r.RouteHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campusnav_route_hops",
			Help:    "Number of edges in returned routes",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	r.RouteStaleEntries = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "campusnav_route_stale_entries_total",
			Help: "Queue entries popped after a cheaper copy was expanded",
		},
	)

	r.RouteSkippedByRule = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "campusnav_route_skipped_transitions_total",
			Help: "Edges rejected by the floor-transition rule",
		},
	)
}
