// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for campusnav/core.
//
// Purpose:
//   - Provide small, deterministic building-map fixtures.
//   - Provide the symmetric-adjacency audit used by several tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0  = 0
	Weight5  = 5
	Weight10 = 10
	Weight20 = 20
)

// addRoom registers a ground-floor room in building 1 and returns its handle.
func addRoom(m *core.BuildingMap, label string) core.NodeID {
	return m.AddNode(core.NewNode(label, 0, 0, 1, 1, core.Room))
}

// newTriangle builds A–B(5), B–C(10), A–C(20) on one floor.
func newTriangle(t *testing.T) (*core.BuildingMap, core.NodeID, core.NodeID, core.NodeID) {
	t.Helper()
	m := core.NewBuildingMap()
	a, b, c := addRoom(m, "A"), addRoom(m, "B"), addRoom(m, "C")
	require.NoError(t, m.AddEdge(a, b, Weight5))
	require.NoError(t, m.AddEdge(b, c, Weight10))
	require.NoError(t, m.AddEdge(a, c, Weight20))

	return m, a, b, c
}

// requireSymmetric fails the test if any adjacency entry lacks its mirror,
// carries a different weight on the other side, or names a missing node.
func requireSymmetric(t *testing.T, m *core.BuildingMap) {
	t.Helper()
	for _, id := range m.Nodes() {
		for _, nb := range m.Neighbors(id) {
			require.Truef(t, m.Has(nb.ID), "node %d lists missing neighbor %d", id, nb.ID)
			back, ok := m.Weight(nb.ID, id)
			require.Truef(t, ok, "edge %d→%d has no mirror", id, nb.ID)
			require.Equalf(t, nb.Weight, back, "edge %d–%d weights differ", id, nb.ID)
		}
	}
}
