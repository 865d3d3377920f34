// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary getters over a building map.
// Policy:
//   - No algorithms or hidden state here.
package core

// Stats is a point-in-time summary of a building map.
type Stats struct {
	Nodes       int          // total nodes
	Edges       int          // undirected edges
	Connectors  int          // nodes of kind VerticalConnector
	Transitions int          // nodes of kind BuildingTransition
	Buildings   int          // distinct building indices
	Floors      int          // distinct (building, floor) pairs
	ByKind      map[Kind]int // node count per kind
}

// Stats returns a snapshot summary of m.
//
// Complexity:
//   - Time O(V), Space O(B + F) for the distinct building and floor sets.
func (m *BuildingMap) Stats() Stats {
	type level struct{ building, floor int }

	s := Stats{
		Nodes:  len(m.nodes),
		Edges:  m.edges,
		ByKind: make(map[Kind]int, len(kindNames)),
	}
	buildings := make(map[int]struct{})
	levels := make(map[level]struct{})
	for _, n := range m.nodes {
		s.ByKind[n.Kind]++
		buildings[n.Building] = struct{}{}
		levels[level{n.Building, n.Floor}] = struct{}{}
	}
	s.Connectors = s.ByKind[VerticalConnector]
	s.Transitions = s.ByKind[BuildingTransition]
	s.Buildings = len(buildings)
	s.Floors = len(levels)

	return s
}
