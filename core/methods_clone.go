// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy and reset of building maps.
//
// Determinism:
//   - Clone keeps every handle and the handle counter, so IDs taken from the
//     source remain valid on the copy and new nodes never collide.
package core

// Clone returns a deep copy: fresh *Node values with the same handles,
// attributes and adjacency. Mutating the clone never affects m.
// Complexity: O(V + E).
func (m *BuildingMap) Clone() *BuildingMap {
	out := &BuildingMap{
		nodes:  make(map[NodeID]*Node, len(m.nodes)),
		order:  make([]NodeID, len(m.order)),
		nextID: m.nextID,
		edges:  m.edges,
	}
	copy(out.order, m.order)

	for id, n := range m.nodes {
		c := *n
		c.owner = out
		c.edges = make(map[NodeID]int64, len(n.edges))
		for nb, w := range n.edges {
			c.edges[nb] = w
		}
		out.nodes[id] = &c
	}

	return out
}

// Clear drops every node and edge. The handle counter is preserved so
// handles issued before Clear are never reissued.
// Complexity: O(V).
func (m *BuildingMap) Clear() {
	for _, n := range m.nodes {
		n.id = NoNode
		n.owner = nil
		n.edges = make(map[NodeID]int64)
	}
	m.nodes = make(map[NodeID]*Node)
	m.order = nil
	m.edges = 0
}
