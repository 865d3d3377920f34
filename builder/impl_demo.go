// SPDX-License-Identifier: MIT
//
// impl_demo.go - Demo(): the two-floor reference building.
//
// Floor 1 is a nine-junction corridor from the entrance with seven rooms;
// floor 2 is a six-junction corridor serving the 2xx rooms. Two stairwells
// (west and east) join the floors. Weights are the surveyed walking costs, not
// geometric distances, so the configured weight policy is ignored.
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const methodDemo = "Demo"

// demoScale stretches the surveyed coordinates for display.
const demoScale = 1.35

type demoNode struct {
	label string
	x, y  int
	floor int
	kind  core.Kind
}

type demoEdge struct {
	a, b string
	w    int64
}

var demoNodes = []demoNode{
	{"Entrance", 50, 350, 1, core.Room},
	{"Corridor 1-1", 100, 350, 1, core.Room},
	{"Corridor 1-2", 150, 350, 1, core.Room},
	{"Corridor 1-3", 200, 350, 1, core.Room},
	{"Corridor 1-4", 250, 350, 1, core.Room},
	{"Corridor 1-5", 300, 350, 1, core.Room},
	{"Corridor 1-6", 350, 350, 1, core.Room},
	{"Corridor 1-7", 400, 350, 1, core.Room},
	{"Corridor 1-8", 450, 350, 1, core.Room},
	{"Corridor 1-9", 500, 350, 1, core.Room},
	{"Stairs 1 West", 50, 300, 1, core.VerticalConnector},
	{"Stairs 1 East", 550, 300, 1, core.VerticalConnector},
	{"Dean's Office", 100, 250, 1, core.Room},
	{"Room 4", 150, 250, 1, core.Room},
	{"Room 3", 200, 250, 1, core.Room},
	{"Room 2", 250, 250, 1, core.Room},
	{"Room 1", 300, 250, 1, core.Room},
	{"Cloakroom", 400, 400, 1, core.Room},
	{"Cafe", 500, 400, 1, core.Room},

	{"Stairs 2 West", 50, 300, 2, core.VerticalConnector},
	{"Stairs 2 East", 550, 300, 2, core.VerticalConnector},
	{"Corridor 2-1", 150, 300, 2, core.Room},
	{"Corridor 2-2", 250, 300, 2, core.Room},
	{"Corridor 2-3", 350, 300, 2, core.Room},
	{"Corridor 2-4", 450, 300, 2, core.Room},
	{"Corridor 2-5", 550, 300, 2, core.Room},
	{"Corridor 2-6", 650, 300, 2, core.Room},
	{"273", 100, 150, 2, core.Room},
	{"271", 150, 150, 2, core.Room},
	{"272", 200, 150, 2, core.Room},
	{"270", 250, 150, 2, core.Room},
	{"268", 300, 150, 2, core.Room},
	{"266", 350, 150, 2, core.Room},
	{"264", 400, 150, 2, core.Room},
	{"262", 450, 150, 2, core.Room},
	{"260", 500, 150, 2, core.Room},
	{"269", 300, 250, 2, core.Room},
	{"267", 350, 250, 2, core.Room},
	{"265", 400, 250, 2, core.Room},
	{"263", 450, 250, 2, core.Room},
	{"261", 500, 250, 2, core.Room},
	{"227", 550, 200, 2, core.Room},
	{"276", 150, 350, 2, core.Room},
	{"279", 200, 350, 2, core.Room},
}

var demoEdges = []demoEdge{
	// floor 1
	{"Entrance", "Corridor 1-1", 50},
	{"Corridor 1-1", "Corridor 1-2", 50},
	{"Corridor 1-2", "Corridor 1-3", 50},
	{"Corridor 1-3", "Corridor 1-4", 50},
	{"Corridor 1-4", "Corridor 1-5", 50},
	{"Corridor 1-5", "Corridor 1-6", 50},
	{"Corridor 1-6", "Corridor 1-7", 50},
	{"Corridor 1-7", "Corridor 1-8", 50},
	{"Corridor 1-8", "Corridor 1-9", 50},
	{"Corridor 1-1", "Stairs 1 West", 50},
	{"Corridor 1-9", "Stairs 1 East", 50},
	{"Corridor 1-1", "Dean's Office", 50},
	{"Corridor 1-2", "Room 4", 50},
	{"Corridor 1-3", "Room 3", 50},
	{"Corridor 1-4", "Room 2", 50},
	{"Corridor 1-5", "Room 1", 50},
	{"Corridor 1-7", "Cloakroom", 50},
	{"Corridor 1-8", "Cafe", 50},

	// stairs
	{"Stairs 1 West", "Stairs 2 West", 50},
	{"Stairs 1 East", "Stairs 2 East", 50},

	// floor 2
	{"Stairs 2 West", "Corridor 2-1", 50},
	{"Corridor 2-1", "Corridor 2-2", 100},
	{"Corridor 2-2", "Corridor 2-3", 100},
	{"Corridor 2-3", "Corridor 2-4", 100},
	{"Corridor 2-4", "Corridor 2-5", 100},
	{"Corridor 2-5", "Corridor 2-6", 100},
	{"Corridor 2-6", "Stairs 2 East", 50},
	{"Corridor 2-1", "273", 150},
	{"Corridor 2-1", "271", 100},
	{"Corridor 2-1", "272", 50},
	{"Corridor 2-2", "270", 100},
	{"Corridor 2-2", "268", 50},
	{"Corridor 2-3", "266", 50},
	{"Corridor 2-3", "264", 50},
	{"Corridor 2-4", "262", 50},
	{"Corridor 2-4", "260", 50},
	{"Corridor 2-2", "269", 50},
	{"Corridor 2-3", "267", 50},
	{"Corridor 2-3", "265", 50},
	{"Corridor 2-4", "263", 50},
	{"Corridor 2-4", "261", 50},
	{"Corridor 2-5", "227", 50},
	{"Corridor 2-1", "276", 100},
	{"Corridor 2-1", "279", 50},
}

// Demo returns a Constructor that adds the reference building to m.
// The map must not already contain any of the demo labels.
func Demo() Constructor {
	return func(m *core.BuildingMap, _ builderConfig) error {
		ids := make(map[string]core.NodeID, len(demoNodes))
		for _, d := range demoNodes {
			if len(m.FindByLabel(d.label)) > 0 {
				return fmt.Errorf("%s: label %q already present: %w", methodDemo, d.label, ErrConstructFailed)
			}
			x := int(float64(d.x) * demoScale)
			y := int(float64(d.y) * demoScale)
			ids[d.label] = m.AddNode(core.NewNode(d.label, x, y, d.floor, 1, d.kind))
		}
		for _, e := range demoEdges {
			if err := m.AddEdge(ids[e.a], ids[e.b], e.w); err != nil {
				return fmt.Errorf("%s: %s–%s: %w", methodDemo, e.a, e.b, err)
			}
		}

		return nil
	}
}
