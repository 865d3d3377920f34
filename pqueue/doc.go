// SPDX-License-Identifier: MIT
//
// Package pqueue provides a generic min-priority queue backed by a binary heap.
//
// Entries are (element, priority) pairs. The same element may be enqueued any
// number of times with different priorities: shortest-path searches use this
// to express decrease-key by re-insertion and simply tolerate the stale copies
// they later pop.
//
// Complexity:
//
//	– Enqueue: O(log n) sift-up
//	– Dequeue: O(log n) sift-down (always toward the smaller child)
//	– Peek, Len: O(1)
//
// Ties between equal priorities are broken by heap position, which depends
// only on the sequence of operations. Replaying the same operations replays
// the same output order.
//
// Errors (sentinel):
//
//	– ErrEmptyQueue if Dequeue or Peek is called on an empty queue.
//
// Example usage:
//
//	q := pqueue.New[string, float64](8)
//	q.Enqueue("lobby", 3)
//	q.Enqueue("stairs", 1)
//	next, _ := q.Dequeue() // "stairs"
package pqueue
