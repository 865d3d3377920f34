// SPDX-License-Identifier: MIT
package route

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Validate checks that p is something FindShortestPath may legally return on m:
// a walk over existing edges, each step obeying CanTraverse, whose weights sum
// to p.Cost. The unreachable form [start] with +Inf cost is accepted as is.
// A nil m has no edges, so only single-node paths pass.
//
// Weights are summed as float64 in walk order, exactly as the search does, so
// a cost above 2^53 that lost precision still matches.
//
// Complexity: O(len(p.Nodes)).
func Validate(m *core.BuildingMap, p Path) error {
	if len(p.Nodes) == 0 {
		return fmt.Errorf("%w: empty", ErrBrokenPath)
	}
	if !p.Reachable() {
		if len(p.Nodes) != 1 {
			return fmt.Errorf("%w: unreachable path must hold only the start, got %d nodes", ErrBrokenPath, len(p.Nodes))
		}
		return nil
	}

	if m == nil && len(p.Nodes) > 1 {
		return fmt.Errorf("%w: no map to walk %d nodes on", ErrBrokenPath, len(p.Nodes))
	}

	var sum float64
	for i := 1; i < len(p.Nodes); i++ {
		a, b := p.Nodes[i-1], p.Nodes[i]
		w, ok := m.Weight(a, b)
		if !ok {
			return fmt.Errorf("%w: no edge %d–%d at step %d", ErrBrokenPath, a, b, i)
		}
		from, _ := m.Node(a)
		to, _ := m.Node(b)
		if !CanTraverse(from, to) {
			return fmt.Errorf("%w: %q (floor %d) → %q (floor %d)",
				ErrIllegalTransition, from.Label, from.Floor, to.Label, to.Floor)
		}
		sum += float64(w)
	}

	if sum != p.Cost {
		return fmt.Errorf("%w: edges sum to %g, path reports %g", ErrCostMismatch, sum, p.Cost)
	}

	return nil
}
