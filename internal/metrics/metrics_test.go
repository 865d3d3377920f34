// SPDX-License-Identifier: MIT
package metrics

import (
	"bytes"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.RouteQueriesTotal)
	assert.NotNil(t, r.RouteDuration)
	assert.NotNil(t, r.MapNodes)
	assert.NotNil(t, r.GetPrometheusRegistry())

	// Independent registries do not share counters.
	other := NewRegistry()
	r.RecordRouteError()
	assert.Equal(t, 0.0, testutil.ToFloat64(other.RouteQueriesTotal.WithLabelValues(OutcomeError)))
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordRoute(t *testing.T) {
	r := NewRegistry()
	r.RecordRoute(OutcomeFound, 2*time.Millisecond, 12, 3, 1, 4)
	r.RecordRoute(OutcomeFound, time.Millisecond, 5, 0, 0, 2)
	r.RecordRoute(OutcomeUnreachable, time.Millisecond, 7, 1, 2, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.RouteQueriesTotal.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RouteQueriesTotal.WithLabelValues(OutcomeUnreachable)))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.RouteStaleEntries))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.RouteSkippedByRule))

	// Hops are observed for found routes only.
	var hops dto.Metric
	require.NoError(t, r.RouteHops.Write(&hops))
	assert.Equal(t, uint64(2), hops.GetHistogram().GetSampleCount())
	assert.Equal(t, 6.0, hops.GetHistogram().GetSampleSum())
}

func TestRecordEditAndMapSize(t *testing.T) {
	r := NewRegistry()
	r.RecordEdit(nil)
	r.RecordEdit(errors.New("bad weight"))
	r.RecordEdit(nil)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.MapEditsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.MapEditsTotal.WithLabelValues("error")))

	r.UpdateMapSize(44, 43)
	assert.Equal(t, 44.0, testutil.ToFloat64(r.MapNodes))
	assert.Equal(t, 43.0, testutil.ToFloat64(r.MapEdges))
}

func TestWriteText(t *testing.T) {
	r := NewRegistry()
	r.UpdateMapSize(3, 2)
	r.RecordRoute(OutcomeFound, time.Millisecond, 3, 0, 0, 2)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "campusnav_map_nodes 3")
	assert.Contains(t, out, `campusnav_route_queries_total{outcome="found"} 1`)
	assert.Contains(t, out, "# TYPE campusnav_route_duration_seconds histogram")
}

func TestMetricNames(t *testing.T) {
	r := NewRegistry()
	r.RecordRoute(OutcomeFound, time.Millisecond, 4, 1, 2, 3)
	r.RecordEdit(nil)
	r.UpdateMapSize(1, 0)

	families, err := r.GetPrometheusRegistry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"campusnav_map_edges",
		"campusnav_map_edits_total",
		"campusnav_map_nodes",
		"campusnav_route_duration_seconds",
		"campusnav_route_hops",
		"campusnav_route_queries_total",
		"campusnav_route_settled_nodes",
		"campusnav_route_skipped_transitions_total",
		"campusnav_route_stale_entries_total",
	}, names)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RouteStaleEntries))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.RouteSkippedByRule))
}
