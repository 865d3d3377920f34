// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries.
//
// Determinism:
//   - Neighbors() and NeighborIDs() are sorted by handle ascending, so a search
//     over an unchanged map expands neighbors in the same order every time.
package core

import (
	"cmp"
	"slices"
)

// Neighbors returns the adjacency entries of id sorted by neighbor handle.
// An absent id yields nil.
// Complexity: O(d·log d).
func (m *BuildingMap) Neighbors(id NodeID) []Neighbor {
	n, ok := m.nodes[id]
	if !ok || len(n.edges) == 0 {
		return nil
	}

	out := make([]Neighbor, 0, len(n.edges))
	for nb, w := range n.edges {
		out = append(out, Neighbor{ID: nb, Weight: w})
	}
	slices.SortFunc(out, func(a, b Neighbor) int { return cmp.Compare(a.ID, b.ID) })

	return out
}

// NeighborIDs returns the neighbor handles of id sorted ascending.
// Complexity: O(d·log d).
func (m *BuildingMap) NeighborIDs(id NodeID) []NodeID {
	n, ok := m.nodes[id]
	if !ok || len(n.edges) == 0 {
		return nil
	}

	out := make([]NodeID, 0, len(n.edges))
	for nb := range n.edges {
		out = append(out, nb)
	}
	slices.Sort(out)

	return out
}

// AdjacencyList returns a snapshot id → sorted neighbor handles for every node.
// Complexity: O(V + E·log d).
func (m *BuildingMap) AdjacencyList() map[NodeID][]NodeID {
	out := make(map[NodeID][]NodeID, len(m.nodes))
	for _, id := range m.order {
		out[id] = m.NeighborIDs(id)
	}

	return out
}
