// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating views over a building map, plus the selection reset the
// editor performs when it hands the map back.
package core

import "slices"

// Filter returns the handles of nodes on the given floor of the given building,
// in insertion order. A zero floor or building matches any value.
// Complexity: O(V).
func (m *BuildingMap) Filter(floor, building int) []NodeID {
	var out []NodeID
	for _, id := range m.order {
		n := m.nodes[id]
		if floor != 0 && n.Floor != floor {
			continue
		}
		if building != 0 && n.Building != building {
			continue
		}
		out = append(out, id)
	}

	return out
}

// Floors returns the distinct floor indices present in building (0 = all), ascending.
func (m *BuildingMap) Floors(building int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, n := range m.nodes {
		if building != 0 && n.Building != building {
			continue
		}
		if _, ok := seen[n.Floor]; !ok {
			seen[n.Floor] = struct{}{}
			out = append(out, n.Floor)
		}
	}
	slices.Sort(out)

	return out
}

// ClearSelection resets Selected on every node.
func (m *BuildingMap) ClearSelection() {
	for _, n := range m.nodes {
		n.Selected = false
	}
}
