// SPDX-License-Identifier: MIT
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/common/expfmt"
)

// Route query outcomes.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// RecordRoute records one completed search.
func (r *Registry) RecordRoute(outcome string, duration time.Duration, settled, stale, skipped, hops int) {
	r.RouteQueriesTotal.WithLabelValues(outcome).Inc()
	r.RouteDuration.Observe(duration.Seconds())
	r.RouteSettledNodes.Observe(float64(settled))
	r.RouteStaleEntries.Add(float64(stale))
	r.RouteSkippedByRule.Add(float64(skipped))
	if outcome == OutcomeFound {
		r.RouteHops.Observe(float64(hops))
	}
}

// RecordRouteError records a query rejected before the search ran
// (unknown label, cancelled context).
func (r *Registry) RecordRouteError() {
	r.RouteQueriesTotal.WithLabelValues(OutcomeError).Inc()
}

// RecordEdit records one map edit transaction.
func (r *Registry) RecordEdit(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.MapEditsTotal.WithLabelValues(status).Inc()
}

// UpdateMapSize sets the map size gauges.
func (r *Registry) UpdateMapSize(nodes, edges int) {
	r.MapNodes.Set(float64(nodes))
	r.MapEdges.Set(float64(edges))
}

// WriteText writes every metric in the Prometheus text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
