// SPDX-License-Identifier: MIT

// Package reach answers connectivity questions about a core.BuildingMap under
// the same floor-transition rule the route search applies.
//
// Where route finds the cheapest walk, reach only asks whether a walk exists.
// It is used to explain an unreachable result ("the lab is on an island with
// no stairs"), to report disconnected parts of a map after an edit, and to
// list what lies within a few steps of a place.
//
// What:
//
//   - Reachable: breadth-first traversal from one node, honouring
//     route.CanTraverse, with visit order, hop depth and parent links.
//   - Components: partition of the whole map into mutually reachable groups.
//   - Diagnose: classify a pair of handles as SameNode, Connected,
//     Disconnected or Missing.
//
// Options (Reachable only):
//
//	– WithContext:   cancellation, checked once per dequeued node.
//	– WithMaxDepth:  stop expanding past d hops (d < 0 → ErrOptionViolation).
//	– WithFilter:    drop individual steps, e.g. to avoid a closed stairwell.
//	– WithOnVisit:   hook per visited node; an error aborts the traversal.
//
// Complexity: every function here is O(V + E).
package reach
