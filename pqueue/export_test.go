// SPDX-License-Identifier: MIT
package pqueue

import "cmp"

// HeapOrdered reports whether q satisfies the heap-order invariant.
// Exposed to the external test package only.
func HeapOrdered[E any, P cmp.Ordered](q *Queue[E, P]) bool {
	for i := 1; i < len(q.entries); i++ {
		if cmp.Less(q.entries[i].prio, q.entries[(i-1)/2].prio) {
			return false
		}
	}

	return true
}
