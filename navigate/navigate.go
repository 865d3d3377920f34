// SPDX-License-Identifier: MIT
package navigate

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// Action is the kind of movement a step asks for.
type Action int

// Actions, in no particular order.
const (
	GoRight Action = iota
	GoLeft
	GoDown
	GoUp
	ClimbStairs
	DescendStairs
	ChangeBuilding
	Arrive
)

var actionNames = [...]string{
	GoRight:        "right",
	GoLeft:         "left",
	GoDown:         "down",
	GoUp:           "up",
	ClimbStairs:    "climb",
	DescendStairs:  "descend",
	ChangeBuilding: "cross",
	Arrive:         "arrive",
}

// String returns a short lowercase name for a.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}

	return actionNames[a]
}

// Step is one walking instruction.
type Step struct {
	Action   Action
	From, To core.NodeID // From == To for Arrive
	Floor    int         // floor the walker is on after the step
	Building int         // building the walker is in after the step
	Weight   int64       // edge weight walked; 0 for Arrive
	Text     string      // human-readable instruction
}

// Steps returns the instructions for walking p over m.
// An unreachable or empty path yields nil. A single-node path yields only
// the Arrive step. Nodes missing from m end the directions early.
//
// Complexity: O(len(p.Nodes)).
func Steps(m *core.BuildingMap, p route.Path) []Step {
	if m == nil || len(p.Nodes) == 0 || !p.Reachable() {
		return nil
	}

	out := make([]Step, 0, len(p.Nodes))
	for i := 1; i < len(p.Nodes); i++ {
		from, okF := m.Node(p.Nodes[i-1])
		to, okT := m.Node(p.Nodes[i])
		if !okF || !okT {
			return out
		}
		w, _ := m.Weight(from.ID(), to.ID())
		a := classify(from, to)
		out = append(out, Step{
			Action:   a,
			From:     from.ID(),
			To:       to.ID(),
			Floor:    to.Floor,
			Building: to.Building,
			Weight:   w,
			Text:     instruction(a, to),
		})
	}

	last, ok := m.Node(p.End())
	if !ok {
		return out
	}
	out = append(out, Step{
		Action:   Arrive,
		From:     last.ID(),
		To:       last.ID(),
		Floor:    last.Floor,
		Building: last.Building,
		Text:     instruction(Arrive, last),
	})

	return out
}

// classify picks the action for moving from → to.
// Floor changes take precedence over building changes, which take precedence
// over planar direction. Ties between axes go to the vertical axis.
func classify(from, to *core.Node) Action {
	if from.Floor != to.Floor {
		if from.Floor < to.Floor {
			return ClimbStairs
		}
		return DescendStairs
	}
	if from.Building != to.Building {
		return ChangeBuilding
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return GoRight
		}
		return GoLeft
	}
	if dy > 0 {
		return GoDown
	}

	return GoUp
}

// instruction renders the text for taking action a towards to.
func instruction(a Action, to *core.Node) string {
	switch a {
	case ClimbStairs:
		return fmt.Sprintf("Take the stairs up to floor %d", to.Floor)
	case DescendStairs:
		return fmt.Sprintf("Take the stairs down to floor %d", to.Floor)
	case ChangeBuilding:
		return fmt.Sprintf("Cross to building %d", to.Building)
	case Arrive:
		return fmt.Sprintf("You have arrived at %s", to.Label)
	case GoRight, GoLeft, GoDown, GoUp:
		return fmt.Sprintf("Go %s to %s", a, to.Label)
	}

	return to.Label
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
