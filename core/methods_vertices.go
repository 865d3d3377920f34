// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns handles in insertion order (handles ascend monotonically).
package core

// AddNode registers n with the map and returns its handle.
//
// Implementation:
//   - Stage 1: If n is already registered here (same pointer), return its handle (no-op).
//   - Stage 2: Refuse a node that is registered in another map.
//   - Stage 3: Allocate the next handle, reset n's adjacency and record insertion order.
//
// Behavior highlights:
//   - Identity is by pointer: two nodes with identical attributes are distinct.
//   - A node still registered in another map returns NoNode and neither map
//     changes. Remove it there first, or add a copy via NewNode.
//   - A nil node returns NoNode.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (m *BuildingMap) AddNode(n *Node) NodeID {
	if n == nil {
		return NoNode
	}
	// Stage 1: idempotent on duplicates.
	if n.owner == m {
		return n.id
	}

	// Stage 2: one owner at a time.
	if n.owner != nil {
		return NoNode
	}

	// Stage 3: fresh registration.
	m.nextID++
	n.id = m.nextID
	n.owner = m
	n.edges = make(map[NodeID]int64)
	m.nodes[n.id] = n
	m.order = append(m.order, n.id)

	return n.id
}

// RemoveNode deletes the node with handle id and every edge touching it.
// Absent handles are a no-op.
//
// Implementation:
//   - Stage 1: Drop the inbound entry from each neighbor's adjacency.
//   - Stage 2: Remove the node from the catalog and the insertion order.
//
// Complexity:
//   - Time O(deg(id) + V) for the order compaction, Space O(1).
func (m *BuildingMap) RemoveNode(id NodeID) {
	n, ok := m.nodes[id]
	if !ok {
		return
	}

	// Stage 1: symmetric adjacency means the neighbors are exactly n.edges.
	var nb NodeID
	for nb = range n.edges {
		if other, exists := m.nodes[nb]; exists {
			delete(other.edges, id)
		}
		m.edges-- // a self-loop appears once in n.edges and is counted once
	}

	// Stage 2: detach.
	delete(m.nodes, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	n.edges = make(map[NodeID]int64)
	n.id = NoNode
	n.owner = nil
}

// Has reports whether id names a node in the map.
func (m *BuildingMap) Has(id NodeID) bool {
	_, ok := m.nodes[id]

	return ok
}

// Node returns the node with handle id. The returned pointer is live:
// editing its exported fields edits the map.
func (m *BuildingMap) Node(id NodeID) (*Node, bool) {
	n, ok := m.nodes[id]

	return n, ok
}

// Nodes returns all handles in insertion order. The slice is a copy.
// Complexity: O(V).
func (m *BuildingMap) Nodes() []NodeID {
	out := make([]NodeID, len(m.order))
	copy(out, m.order)

	return out
}

// Len returns the number of nodes.
func (m *BuildingMap) Len() int { return len(m.nodes) }

// FindByLabel returns every node whose label equals label, in insertion order.
// Complexity: O(V).
func (m *BuildingMap) FindByLabel(label string) []NodeID {
	var out []NodeID
	for _, id := range m.order {
		if m.nodes[id].Label == label {
			out = append(out, id)
		}
	}

	return out
}
