// SPDX-License-Identifier: MIT
//
// impl_corridor.go - Corridor(layout): one floor's corridor with rooms.
//
// Layout (Junctions = 3, RoomsPerJunction = 2, spacing s):
//
//	      R1      R3      R5          y = Y - s
//	      |       |       |
//	X+s  C1 ——— C2 ——— C3             y = Y
//	      |       |       |
//	      R2      R4      R6          y = Y + s
//
// Room k (1-based) hangs off junction ⌈k/RoomsPerJunction⌉, north side first.
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodCorridor  = "Corridor"
	minJunctions    = 1
	maxRoomsPerSide = 2
	maxTwoDigitRoom = 99
)

// CorridorLayout places one corridor on one floor of one building.
type CorridorLayout struct {
	Building int // 1-based
	Floor    int // 1-based
	X, Y     int // position of the corridor's west end; junction i sits at X + i*Spacing

	Junctions        int // corridor junction count, ≥ 1
	RoomsPerJunction int // 0, 1 (north) or 2 (north and south)
	Spacing          int // distance between junctions; ≤ 0 means DefaultSpacing
}

// CorridorLabel names junction i (1-based) of the corridor on (building, floor).
func CorridorLabel(building, floor, i int) string {
	return fmt.Sprintf("Corridor %d.%d-%d", building, floor, i)
}

// RoomLabel names room k (1-based) on (building, floor): "1.203" for room 3
// on floor 2, "1.2-103" once the room number needs a third digit. The dash
// keeps floor 11 room 1 ("1.1101") apart from floor 1 room 101 ("1.1-101").
func RoomLabel(building, floor, k int) string {
	if k > maxTwoDigitRoom {
		return fmt.Sprintf("%d.%d-%d", building, floor, k)
	}

	return fmt.Sprintf("%d.%d%02d", building, floor, k)
}

// Corridor returns a Constructor that adds the junctions of layout, chains them
// west to east and hangs rooms off each junction.
func Corridor(layout CorridorLayout) Constructor {
	return func(m *core.BuildingMap, cfg builderConfig) error {
		// 1) Validate.
		if err := validateFloor(methodCorridor, layout.Floor); err != nil {
			return err
		}
		if layout.Junctions < minJunctions {
			return fmt.Errorf("%s: junctions=%d < min=%d: %w", methodCorridor, layout.Junctions, minJunctions, ErrTooFewNodes)
		}
		if layout.RoomsPerJunction < 0 || layout.RoomsPerJunction > maxRoomsPerSide {
			return fmt.Errorf("%s: rooms per junction=%d not in [0,%d]: %w",
				methodCorridor, layout.RoomsPerJunction, maxRoomsPerSide, ErrConstructFailed)
		}
		s := layout.Spacing
		if s <= 0 {
			s = DefaultSpacing
		}

		// 2) Junctions, chained.
		prev := core.NoNode
		room := 0
		for i := 1; i <= layout.Junctions; i++ {
			x := layout.X + i*s
			j := m.AddNode(core.NewNode(CorridorLabel(layout.Building, layout.Floor, i), x, layout.Y, layout.Floor, layout.Building, core.Room))
			if prev != core.NoNode {
				if err := connect(m, cfg, prev, j); err != nil {
					return fmt.Errorf("%s: %w", methodCorridor, err)
				}
			}
			prev = j

			// 3) Rooms: north, then south.
			for side := 0; side < layout.RoomsPerJunction; side++ {
				room++
				y := layout.Y - s
				if side == 1 {
					y = layout.Y + s
				}
				r := m.AddNode(core.NewNode(RoomLabel(layout.Building, layout.Floor, room), x, y, layout.Floor, layout.Building, core.Room))
				if err := connect(m, cfg, j, r); err != nil {
					return fmt.Errorf("%s: %w", methodCorridor, err)
				}
			}
		}

		return nil
	}
}
