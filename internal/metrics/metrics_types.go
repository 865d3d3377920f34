// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instrumentation for route planning.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application.
type Registry struct {
	// Route Metrics
	RouteQueriesTotal  *prometheus.CounterVec
	RouteDuration      prometheus.Histogram
	RouteSettledNodes  prometheus.Histogram
	RouteHops          prometheus.Histogram
	RouteStaleEntries  prometheus.Counter
	RouteSkippedByRule prometheus.Counter

	// Map Metrics
	MapNodes      prometheus.Gauge
	MapEdges      prometheus.Gauge
	MapEditsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized on a private
// Prometheus registry, so tests can create as many as they like.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initRouteMetrics()
	r.initMapMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
