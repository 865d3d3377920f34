// SPDX-License-Identifier: MIT
package route

import "github.com/katalvlaran/campusnav/core"

// CanTraverse reports whether a walker standing on from may step onto to.
//
// Steps on the same floor are always allowed. A step that changes floor is
// allowed only between two vertical connectors. The rule reads the nodes'
// current Floor and Kind, so it follows any edit made after the edge was added.
func CanTraverse(from, to *core.Node) bool {
	if from.Floor == to.Floor {
		return true
	}

	return from.Kind == core.VerticalConnector && to.Kind == core.VerticalConnector
}
