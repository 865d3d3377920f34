// SPDX-License-Identifier: MIT
//
// impl_campus.go - Campus(cfg): a full site of identical buildings.
//
// Each building gets one corridor per floor, stairwells joining all floors,
// and a passage to the next building on PassageFloor. Buildings are laid out
// west to east with a gap of two spacings between them.
package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const methodCampus = "Campus"

// StairPlacement selects where stairwells go in each building.
type StairPlacement string

// Stairwell placements.
const (
	StairsEnds   StairPlacement = "ends"   // one at each end of the corridor
	StairsWest   StairPlacement = "west"   // west end only
	StairsCenter StairPlacement = "center" // middle of the corridor
)

// CampusConfig describes a generated campus.
type CampusConfig struct {
	Buildings        int
	Floors           int
	Junctions        int // corridor junctions per floor
	RoomsPerJunction int // 0..2
	Spacing          int // ≤ 0 means DefaultSpacing
	Stairs           StairPlacement
	PassageFloor     int // floor carrying the passages; 0 means 1
}

// Campus returns a Constructor that generates the whole site described by c.
//
// Complexity: O(B·F·J) nodes; stairwell and passage attachment add O(V) each.
func Campus(c CampusConfig) Constructor {
	return func(m *core.BuildingMap, cfg builderConfig) error {
		// 1) Validate and resolve defaults.
		if c.Buildings < 1 {
			return fmt.Errorf("%s: buildings=%d < min=1: %w", methodCampus, c.Buildings, ErrTooFewNodes)
		}
		if err := validateFloor(methodCampus, c.Floors); err != nil {
			return err
		}
		s := c.Spacing
		if s <= 0 {
			s = DefaultSpacing
		}
		pf := c.PassageFloor
		if pf == 0 {
			pf = 1
		}
		if pf < 1 || pf > c.Floors {
			return fmt.Errorf("%s: passage floor=%d not in [1,%d]: %w", methodCampus, pf, c.Floors, ErrBadFloor)
		}
		width := (c.Junctions + 1) * s
		origin := func(b int) int { return (b - 1) * (width + 2*s) }

		floors := make([]int, c.Floors)
		for i := range floors {
			floors[i] = i + 1
		}

		// 2) Corridors and stairwells per building.
		var cons []Constructor
		for b := 1; b <= c.Buildings; b++ {
			x0 := origin(b)
			for _, f := range floors {
				cons = append(cons, Corridor(CorridorLayout{
					Building:         b,
					Floor:            f,
					X:                x0,
					Junctions:        c.Junctions,
					RoomsPerJunction: c.RoomsPerJunction,
					Spacing:          s,
				}))
			}
			if c.Floors < 2 {
				continue
			}
			switch c.Stairs {
			case StairsWest:
				cons = append(cons, Stairwell(fmt.Sprintf("Stairs %d West", b), b, x0, 0, floors...))
			case StairsCenter:
				cons = append(cons, Stairwell(fmt.Sprintf("Stairs %d Center", b), b, x0+((c.Junctions+1)/2)*s, -s/2, floors...))
			case StairsEnds, "":
				cons = append(cons,
					Stairwell(fmt.Sprintf("Stairs %d West", b), b, x0, 0, floors...),
					Stairwell(fmt.Sprintf("Stairs %d East", b), b, x0+width, 0, floors...),
				)
			default:
				return fmt.Errorf("%s: unknown stair placement %q: %w", methodCampus, c.Stairs, ErrConstructFailed)
			}
		}

		// 3) Passages between neighbouring buildings.
		for b := 1; b < c.Buildings; b++ {
			cons = append(cons, Passage(pf,
				Door{Building: b, X: origin(b) + width, Y: s},
				Door{Building: b + 1, X: origin(b + 1), Y: s},
			))
		}

		// 4) Apply in order.
		for _, fn := range cons {
			if err := fn(m, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodCampus, err)
			}
		}

		return nil
	}
}
