// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMapMetrics() {
	r.MapNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "campusnav_map_nodes",
			Help: "Number of nodes in the building map",
		},
	)

	r.MapEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "campusnav_map_edges",
			Help: "Number of undirected edges in the building map",
		},
	)

	r.MapEditsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusnav_map_edits_total",
			Help: "Total number of map edit transactions by status",
		},
		[]string{"status"},
	)
}
