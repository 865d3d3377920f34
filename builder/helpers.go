// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// connect prices a–b with cfg.weightFn and adds the edge.
func connect(m *core.BuildingMap, cfg builderConfig, a, b core.NodeID) error {
	na, okA := m.Node(a)
	nb, okB := m.Node(b)
	if !okA || !okB {
		return fmt.Errorf("connect %d–%d: %w", a, b, core.ErrNodeNotFound)
	}

	return m.AddEdge(a, b, cfg.weightFn(na, nb))
}

// nearestCorridor returns the corridor junction in (building, floor) closest
// to (x, y). Ties keep the earliest inserted junction.
// Complexity: O(V).
func nearestCorridor(m *core.BuildingMap, building, floor, x, y int) (core.NodeID, bool) {
	probe := &core.Node{X: x, Y: y}
	best, bestD := core.NoNode, int64(-1)
	for _, id := range m.Nodes() {
		n, _ := m.Node(id)
		if !n.IsCorridor() || n.Building != building || n.Floor != floor {
			continue
		}
		if d := core.Distance(probe, n); bestD < 0 || d < bestD {
			best, bestD = id, d
		}
	}

	return best, best != core.NoNode
}

// validateFloor rejects floor indices below 1.
func validateFloor(method string, floor int) error {
	if floor < 1 {
		return fmt.Errorf("%s: floor=%d: %w", method, floor, ErrBadFloor)
	}

	return nil
}
