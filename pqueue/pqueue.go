// SPDX-License-Identifier: MIT
package pqueue

import (
	"cmp"
	"errors"
)

// ErrEmptyQueue is returned by Dequeue and Peek on an empty queue.
// Reaching it from a search loop that checks Len first indicates a bug.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// entry pairs an element with its priority.
type entry[E any, P cmp.Ordered] struct {
	elem E
	prio P
}

// Queue is a min-priority queue over elements E keyed by priorities P.
//
// Heap-order invariant: for every index i > 0,
// entries[(i-1)/2].prio <= entries[i].prio.
//
// The zero value is an empty queue ready to use. A Queue is not safe for
// concurrent use.
type Queue[E any, P cmp.Ordered] struct {
	entries []entry[E, P]
}

// New returns an empty queue with room for capacity entries before growing.
// A negative capacity is treated as zero.
func New[E any, P cmp.Ordered](capacity int) *Queue[E, P] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[E, P]{entries: make([]entry[E, P], 0, capacity)}
}

// Len returns the number of entries, stale duplicates included.
func (q *Queue[E, P]) Len() int { return len(q.entries) }

// Enqueue inserts elem with priority prio.
// Complexity: O(log n) amortized.
func (q *Queue[E, P]) Enqueue(elem E, prio P) {
	q.entries = append(q.entries, entry[E, P]{elem: elem, prio: prio})
	q.siftUp(len(q.entries) - 1)
}

// Dequeue removes and returns the element with the smallest priority.
// Complexity: O(log n).
func (q *Queue[E, P]) Dequeue() (E, error) {
	var zero E
	n := len(q.entries)
	if n == 0 {
		return zero, ErrEmptyQueue
	}

	// 1) Take the root, move the last entry into its place.
	top := q.entries[0].elem
	q.entries[0] = q.entries[n-1]
	q.entries[n-1] = entry[E, P]{} // release references held by E
	q.entries = q.entries[:n-1]

	// 2) Restore heap order from the root.
	if len(q.entries) > 0 {
		q.siftDown(0)
	}

	return top, nil
}

// Peek returns the minimum element and its priority without removing it.
func (q *Queue[E, P]) Peek() (E, P, error) {
	if len(q.entries) == 0 {
		var (
			zeroE E
			zeroP P
		)
		return zeroE, zeroP, ErrEmptyQueue
	}

	return q.entries[0].elem, q.entries[0].prio, nil
}

// Reset empties the queue but keeps the allocated storage.
func (q *Queue[E, P]) Reset() {
	clear(q.entries)
	q.entries = q.entries[:0]
}

// siftUp moves entries[i] toward the root while it beats its parent.
func (q *Queue[E, P]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if cmp.Compare(q.entries[parent].prio, q.entries[i].prio) <= 0 {
			return
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

// siftDown moves entries[i] toward the leaves, always swapping with the
// smaller child, until neither child beats it.
func (q *Queue[E, P]) siftDown(i int) {
	n := len(q.entries)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && cmp.Less(q.entries[left].prio, q.entries[smallest].prio) {
			smallest = left
		}
		if right < n && cmp.Less(q.entries[right].prio, q.entries[smallest].prio) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
}
