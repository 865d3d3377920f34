// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/EdgeCount.
//
// Invariants:
//   - Every mutation writes both directions before returning.
//   - Failed mutations leave both endpoints untouched.
package core

import (
	"fmt"
	"math"
)

// AddEdge connects a and b with the given non-negative weight.
//
// Steps:
//  1. Reject weight < 0 with ErrInvalidWeight.
//  2. Reject handles not in the map with ErrNodeNotFound.
//  3. Write a→b and b→a; an existing edge is overwritten (last write wins).
//
// Complexity: O(1) amortized.
func (m *BuildingMap) AddEdge(a, b NodeID, weight int64) error {
	// 1) weight domain
	if weight < 0 {
		return fmt.Errorf("%w: %d between %d and %d", ErrInvalidWeight, weight, a, b)
	}

	// 2) endpoints
	na, ok := m.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	nb, ok := m.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}

	// 3) symmetric write
	if _, exists := na.edges[b]; !exists {
		m.edges++
	}
	na.edges[b] = weight
	nb.edges[a] = weight

	return nil
}

// RemoveEdge deletes the edge between a and b in both directions.
// Missing edges, missing nodes and NoNode are all no-ops.
// Complexity: O(1).
func (m *BuildingMap) RemoveEdge(a, b NodeID) {
	if a == NoNode || b == NoNode {
		return
	}
	na, okA := m.nodes[a]
	nb, okB := m.nodes[b]

	removed := false
	if okA {
		if _, exists := na.edges[b]; exists {
			delete(na.edges, b)
			removed = true
		}
	}
	if okB {
		if _, exists := nb.edges[a]; exists {
			delete(nb.edges, a)
			removed = true
		}
	}
	if removed {
		m.edges--
	}
}

// HasEdge reports whether a and b are adjacent.
func (m *BuildingMap) HasEdge(a, b NodeID) bool {
	na, ok := m.nodes[a]
	if !ok {
		return false
	}
	_, exists := na.edges[b]

	return exists
}

// Weight returns the weight of edge a–b and whether it exists.
func (m *BuildingMap) Weight(a, b NodeID) (int64, bool) {
	na, ok := m.nodes[a]
	if !ok {
		return 0, false
	}
	w, exists := na.edges[b]

	return w, exists
}

// EdgeCount returns the number of undirected edges.
func (m *BuildingMap) EdgeCount() int { return m.edges }

// Distance returns the truncated Euclidean distance between the planar
// coordinates of a and b. Editors use it as the default edge weight.
func Distance(a, b *Node) int64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return int64(math.Sqrt(dx*dx + dy*dy))
}

// Connect adds an edge between a and b weighted by Distance.
func (m *BuildingMap) Connect(a, b NodeID) error {
	na, ok := m.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	nb, ok := m.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}

	return m.AddEdge(a, b, Distance(na, nb))
}
