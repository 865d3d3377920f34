// SPDX-License-Identifier: MIT
//
// impl_passage.go - Passage: a walkway between two buildings on one floor.
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const methodPassage = "Passage"

// Door is one end of a passage.
type Door struct {
	Building int
	X, Y     int
}

// Passage returns a Constructor that adds a BuildingTransition node at each
// door, joins the two, and joins each door to the nearest corridor junction
// of its building on floor. Labels: "Passage <from>→<to> F<floor>".
func Passage(floor int, from, to Door) Constructor {
	return func(m *core.BuildingMap, cfg builderConfig) error {
		if err := validateFloor(methodPassage, floor); err != nil {
			return err
		}
		if from.Building == to.Building {
			return fmt.Errorf("%s: both doors in building %d: %w", methodPassage, from.Building, ErrConstructFailed)
		}

		doors := [2]core.NodeID{}
		for i, d := range [2]Door{from, to} {
			other := to.Building
			if i == 1 {
				other = from.Building
			}
			label := fmt.Sprintf("Passage %d→%d F%d", d.Building, other, floor)
			doors[i] = m.AddNode(core.NewNode(label, d.X, d.Y, floor, d.Building, core.BuildingTransition))

			c, ok := nearestCorridor(m, d.Building, floor, d.X, d.Y)
			if !ok {
				return fmt.Errorf("%s: no corridor on building %d floor %d: %w",
					methodPassage, d.Building, floor, ErrConstructFailed)
			}
			if err := connect(m, cfg, doors[i], c); err != nil {
				return fmt.Errorf("%s: %w", methodPassage, err)
			}
		}

		if err := connect(m, cfg, doors[0], doors[1]); err != nil {
			return fmt.Errorf("%s: %w", methodPassage, err)
		}

		return nil
	}
}
