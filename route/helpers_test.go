// SPDX-License-Identifier: MIT
package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
)

// fixture wraps a building map with label-addressed helpers so scenarios read
// like the floor plans they describe.
type fixture struct {
	t   *testing.T
	m   *core.BuildingMap
	ids map[string]core.NodeID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, m: core.NewBuildingMap(), ids: make(map[string]core.NodeID)}
}

// room adds a Room on floor in building 1.
func (f *fixture) room(label string, floor int) core.NodeID {
	return f.add(label, floor, core.Room)
}

// stairs adds a VerticalConnector on floor in building 1.
func (f *fixture) stairs(label string, floor int) core.NodeID {
	return f.add(label, floor, core.VerticalConnector)
}

func (f *fixture) add(label string, floor int, kind core.Kind) core.NodeID {
	id := f.m.AddNode(core.NewNode(label, 0, 0, floor, 1, kind))
	f.ids[label] = id
	return id
}

// edge connects two labelled nodes.
func (f *fixture) edge(a, b string, w int64) {
	f.t.Helper()
	require.NoError(f.t, f.m.AddEdge(f.id(a), f.id(b), w))
}

func (f *fixture) id(label string) core.NodeID {
	f.t.Helper()
	id, ok := f.ids[label]
	require.Truef(f.t, ok, "unknown fixture label %q", label)
	return id
}

// seq maps labels to handles in order.
func (f *fixture) seq(labels ...string) []core.NodeID {
	out := make([]core.NodeID, len(labels))
	for i, l := range labels {
		out[i] = f.id(l)
	}
	return out
}
