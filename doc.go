// SPDX-License-Identifier: MIT

// Package campusnav plans walking routes through multi-floor, multi-building
// facilities such as a university campus.
//
// What is campusnav?
//
//	A small in-memory routing core built around one rule: you may only change
//	floor by taking the stairs. It brings together:
//		• Building map: nodes (rooms, stair landings, passages) and weighted,
//		  undirected walkways with stable handles
//		• Priority queue: a generic indexed min-heap
//		• Shortest paths: Dijkstra constrained by the floor-change rule
//		• Reachability: BFS under the same rule, components and diagnosis
//		• Builders: demo building, corridors, stairwells and whole campuses
//		• Navigation: turn-by-turn instructions for a planned path
//
// Layout:
//
//	core/      - BuildingMap, Node, Kind, cloning and statistics
//	pqueue/    - indexed min-priority queue (ErrEmptyQueue on empty pops)
//	route/     - FindShortestPath and the traversal rule
//	reach/     - Reachable, Components, Diagnose
//	builder/   - Constructor-based map generators (Demo, Campus, Stairwell…)
//	navigate/  - Steps and Session for step-by-step directions
//	planner/   - concurrency-safe facade: label lookup, logging, metrics, edits
//	cmd/campusnav - command-line front end (route, nodes, check)
//
// Quick ASCII example:
//
//	  floor 2   Lab ── S2
//	                   │   (stairs)
//	  floor 1   Office ── S1
//
// Office reaches Lab only through S1 and S2, because both are vertical
// connectors; a direct Office–Lab walkway would be ignored by the solver.
//
//	go get github.com/katalvlaran/campusnav
package campusnav
