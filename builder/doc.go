// SPDX-License-Identifier: MIT

// Package builder assembles core.BuildingMap fixtures and demo campuses from
// small, composable constructors.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build / BuildWith: create a map and apply constructors in order.
//     – Option:            functional option mutating builderConfig.
//   - Constructors:
//     – Chain:     n rooms in a line, fixed weight (search fixtures).
//     – Corridor:  a row of corridor junctions with rooms on both sides.
//     – Stairwell: one connector per floor, chained vertically and hooked to
//     the nearest corridor junction of each floor.
//     – Passage:   a pair of transition nodes joining two buildings.
//     – Campus:    a whole multi-building, multi-floor site from CampusConfig.
//     – Demo:      the two-floor reference building shipped with the navigator.
//   - Weight policy:
//     – DistanceWeight (default): core.Distance between endpoints.
//     – FixedWeight: a constant, for fixtures where geometry is irrelevant.
//
// Guarantees:
//
//   - Determinism: same constructors and options ⇒ identical maps, handles included.
//   - Never panics at build time; parameter errors are sentinel-wrapped.
//     Option constructors panic on meaningless values (negative weights).
//   - Labels produced by Corridor, Stairwell and Passage are unique per
//     (building, floor), so label lookup stays unambiguous on generated campuses.
package builder
