// SPDX-License-Identifier: MIT
//
// impl_stairwell.go - Stairwell: one vertical connector per floor.
//
// Contract:
//   - At least two floors, each ≥ 1 (else ErrBadFloor).
//   - Landings are added in the given floor order and chained in that order,
//     each flight priced at cfg.stairWeight.
//   - Every landing is joined to the nearest corridor junction of its floor and
//     building; a floor without corridor is ErrConstructFailed.
//   - Landing labels: "<name> F<floor>".
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodStairwell = "Stairwell"
	minLandings     = 2
)

// Stairwell returns a Constructor that adds a staircase named name at (x, y)
// in building, with a landing on each of floors. Add the corridors it serves
// first.
func Stairwell(name string, building, x, y int, floors ...int) Constructor {
	return func(m *core.BuildingMap, cfg builderConfig) error {
		if len(floors) < minLandings {
			return fmt.Errorf("%s %q: %d floors < min=%d: %w", methodStairwell, name, len(floors), minLandings, ErrBadFloor)
		}
		for _, f := range floors {
			if err := validateFloor(methodStairwell, f); err != nil {
				return err
			}
		}

		prev := core.NoNode
		for _, f := range floors {
			label := fmt.Sprintf("%s F%d", name, f)
			id := m.AddNode(core.NewNode(label, x, y, f, building, core.VerticalConnector))

			c, ok := nearestCorridor(m, building, f, x, y)
			if !ok {
				return fmt.Errorf("%s %q: no corridor on building %d floor %d: %w",
					methodStairwell, name, building, f, ErrConstructFailed)
			}
			if err := connect(m, cfg, id, c); err != nil {
				return fmt.Errorf("%s %q: %w", methodStairwell, name, err)
			}

			if prev != core.NoNode {
				if err := m.AddEdge(prev, id, cfg.stairWeight); err != nil {
					return fmt.Errorf("%s %q: %w", methodStairwell, name, err)
				}
			}
			prev = id
		}

		return nil
	}
}
