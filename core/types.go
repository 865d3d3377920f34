// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Kind, NodeID, BuildingMap declarations, sentinel errors and NewBuildingMap.
//
// Errors:
//
//	ErrInvalidWeight - negative edge weight supplied to AddEdge.
//	ErrNodeNotFound  - edge endpoint handle is not registered in the map.
//	ErrUnknownKind   - ParseKind received an unrecognised kind name.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for building map operations.
var (
	// ErrInvalidWeight indicates a negative edge weight. The map is left unchanged.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrNodeNotFound indicates an operation referenced a handle that is not in the map.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrUnknownKind indicates a textual kind that does not name any Kind.
	ErrUnknownKind = errors.New("core: unknown node kind")
)

// NodeID is an opaque, stable handle for a node inside one BuildingMap.
// Handles are allocated monotonically and never reused by the same map.
type NodeID uint32

// NoNode is the zero handle. It never names a registered node.
const NoNode NodeID = 0

// Kind classifies a node by the role it plays in walking between places.
type Kind int

const (
	// Room is an ordinary point of interest: office, lecture hall, corridor junction.
	Room Kind = iota

	// VerticalConnector is a stairwell or lift landing; the only legal way to change floor.
	VerticalConnector

	// BuildingTransition is a passage between two buildings (wings).
	BuildingTransition
)

// kindNames maps each Kind to its canonical lowercase name.
var kindNames = [...]string{
	Room:               "room",
	VerticalConnector:  "connector",
	BuildingTransition: "transition",
}

// String returns the canonical lowercase name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind converts a case-insensitive kind name back into a Kind.
// "stairs" and "staircase" are accepted as aliases of VerticalConnector.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "room":
		return Room, nil
	case "connector", "stairs", "staircase":
		return VerticalConnector, nil
	case "transition":
		return BuildingTransition, nil
	}

	return Room, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// corridorPrefix marks nodes that model corridor junctions rather than destinations.
const corridorPrefix = "Corridor"

// Node is a point of interest on the building map.
//
// Label, coordinates, floor, building, kind and the selection flag are plain
// fields: the editor layer writes them directly. The adjacency map is private
// so that only BuildingMap can mutate it and keep it symmetric.
type Node struct {
	// Label is the display name, e.g. "Room 101".
	Label string

	// X and Y are planar map coordinates. They feed Distance and navigation
	// hints; the solver never reads them.
	X, Y int

	// Floor is the 1-based floor index.
	Floor int

	// Building is the 1-based building (wing) index.
	Building int

	// Kind classifies the node; see Kind.
	Kind Kind

	// Selected is editor state. The core never reads or writes it except ClearSelection.
	Selected bool

	id    NodeID           // assigned by BuildingMap.AddNode
	owner *BuildingMap     // map the node is registered in, nil when detached
	edges map[NodeID]int64 // neighbor handle → non-negative weight
}

// NewNode returns a detached node with the given attributes.
// It becomes part of a map only after BuildingMap.AddNode.
func NewNode(label string, x, y, floor, building int, kind Kind) *Node {
	return &Node{
		Label:    label,
		X:        x,
		Y:        y,
		Floor:    floor,
		Building: building,
		Kind:     kind,
		edges:    make(map[NodeID]int64),
	}
}

// ID returns the handle assigned by the owning map, or NoNode if detached.
func (n *Node) ID() NodeID { return n.id }

// IsCorridor reports whether the node is a corridor junction (label prefix "Corridor").
func (n *Node) IsCorridor() bool { return strings.HasPrefix(n.Label, corridorPrefix) }

// Degree returns the number of neighbors of n.
func (n *Node) Degree() int { return len(n.edges) }

// String returns the label.
func (n *Node) String() string { return n.Label }

// Neighbor is one adjacency entry as seen from a node.
type Neighbor struct {
	ID     NodeID
	Weight int64
}

// BuildingMap owns the nodes of a facility and the weighted, undirected
// adjacency between them.
//
// Invariants:
//   - adjacency is symmetric: a→b with weight w iff b→a with weight w;
//   - weights are non-negative;
//   - no adjacency entry names a node that is not in the map.
//
// BuildingMap performs no locking. Callers must not run a mutation
// concurrently with any other call on the same map.
type BuildingMap struct {
	nodes  map[NodeID]*Node
	order  []NodeID // insertion order; compacted on RemoveNode
	nextID NodeID
	edges  int // undirected edge count
}

// NewBuildingMap returns an empty map.
// Complexity: O(1).
func NewBuildingMap() *BuildingMap {
	return &BuildingMap{
		nodes: make(map[NodeID]*Node),
	}
}
