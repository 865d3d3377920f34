// SPDX-License-Identifier: MIT
//
// Package core provides the building map: an in-memory, undirected, weighted
// graph of points of interest spread over buildings and floors.
//
// Model:
//
//   - Node: label, planar coordinates (X, Y), Floor, Building, Kind and an
//     editor-owned Selected flag. Identity is the handle (NodeID) assigned by
//     the owning map, never the attribute values.
//   - Kind: Room, VerticalConnector (stairs, lifts) or BuildingTransition.
//   - BuildingMap: an arena of nodes addressed by NodeID; each node keeps a
//     private neighbor→weight map.
//
// Invariants kept by every mutation:
//
//   - adjacency is symmetric with equal weights on both sides;
//   - weights are non-negative (AddEdge returns ErrInvalidWeight otherwise and
//     leaves the map unchanged);
//   - RemoveNode first strips every inbound entry, so nothing dangles.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(n *Node) NodeID               // O(1), idempotent per *Node
//	RemoveNode(id NodeID)                 // O(deg + V), no-op if absent
//
//	// Edge lifecycle
//	AddEdge(a, b NodeID, w int64) error   // O(1), last write wins
//	Connect(a, b NodeID) error            // AddEdge weighted by Distance
//	RemoveEdge(a, b NodeID)               // O(1), no-op if absent
//
//	// Queries
//	Node(id) / Has(id) / Nodes() / Len()
//	HasEdge(a, b) / Weight(a, b) / EdgeCount()
//	Neighbors(id) / NeighborIDs(id) / AdjacencyList()
//	FindByLabel(label) / Filter(floor, building) / Floors(building)
//
//	// Maintenance
//	Clone() / Clear() / ClearSelection() / Stats()
//
// Concurrency: BuildingMap does no locking. A query must never overlap a
// mutation of the same map; wrap the map (see package planner) when several
// goroutines share it.
//
// Errors:
//
//	ErrInvalidWeight – negative edge weight
//	ErrNodeNotFound  – edge endpoint not in the map
//	ErrUnknownKind   – ParseKind input names no Kind
package core
