// SPDX-License-Identifier: MIT

// Package navigate turns a route.Path into turn-by-turn walking directions.
//
// Steps derives one instruction per consecutive pair of path nodes:
//
//   - floor change     → ClimbStairs / DescendStairs ("Take the stairs up to floor 2")
//   - building change  → ChangeBuilding ("Cross to building 3")
//   - otherwise the dominant screen axis of the move decides GoRight, GoLeft,
//     GoDown or GoUp (Y grows downwards, as on the map canvas).
//
// A final Arrive step names the destination. Session is a cursor over those
// steps for an interactive "next step" flow; it also reports which floor a
// map view should show at each point.
package navigate
