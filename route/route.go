// SPDX-License-Identifier: MIT
//
// Package route implements the floor-aware shortest-path search used to plan
// walks through a multi-building, multi-floor facility.
//
// The search is Dijkstra's algorithm with one extra rule: an edge whose
// endpoints lie on different floors can be walked only if both endpoints are
// vertical connectors (see CanTraverse). The rule is checked every time an
// edge is considered, never stored in the map.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each relaxation pushes one queue entry: up to E pushes.
//   - Each push/pop costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor tables.
//   - O(E) worst-case for queue entries under re-insertion.
//
// Notes on implementation choices:
//
//   - Decrease-key is expressed by re-insertion. There is no visited set: a
//     popped entry whose priority exceeds the node's current distance is a
//     stale copy and is ignored.
//   - The loop stops as soon as the end node is popped; with non-negative
//     weights its distance is final at that point.
//   - Neighbors are expanded in handle order, so equal inputs give equal outputs.
package route

import (
	"math"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/pqueue"
)

// FindShortestPath returns the least-cost walk from start to end over m.
//
// Result contract:
//
//   - start == end: Path{[start], 0}.
//   - end reachable: start … end, Cost = sum of walked weights.
//   - end unreachable (or not in m): Path{[start], +Inf}.
//
// The search never fails and never mutates m. When several walks share the
// minimum cost, any one of them may be returned.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FindShortestPath(start, end core.NodeID, m *core.BuildingMap, opts ...Option) Path {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Stats != nil {
		*cfg.Stats = Stats{}
	}

	// 2) Prepare runner state sized to the map.
	size := 0
	if m != nil {
		size = m.Len()
	}
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make(map[core.NodeID]float64, size),
		prev:    make(map[core.NodeID]core.NodeID, size),
		pq:      pqueue.New[core.NodeID, float64](size),
	}

	// 3) Run.
	r.init(start)
	r.process(end)
	p := r.reconstruct(start, end)

	cfg.Logger.Debug("route: search finished",
		"start", start,
		"end", end,
		"cost", p.Cost,
		"hops", p.Hops(),
		"reachable", p.Reachable(),
	)

	return p
}

// runner holds the mutable state for a single search.
type runner struct {
	m       *core.BuildingMap                   // read-only within the search
	options Options                             // stats sink, logger
	dist    map[core.NodeID]float64             // tentative distance from start
	prev    map[core.NodeID]core.NodeID         // predecessor on the best known walk
	pq      *pqueue.Queue[core.NodeID, float64] // frontier, duplicates allowed
}

// init sets every distance to +Inf and every predecessor to NoNode,
// then seeds the queue with start at distance 0.
func (r *runner) init(start core.NodeID) {
	inf := math.Inf(1)
	if r.m != nil {
		for _, id := range r.m.Nodes() {
			r.dist[id] = inf
			r.prev[id] = core.NoNode
		}
	}

	r.dist[start] = 0
	r.pq.Enqueue(start, 0)
	r.count(func(s *Stats) { s.Pushed++ })
}

// process pops the frontier until it empties or end is popped.
func (r *runner) process(end core.NodeID) {
	for r.pq.Len() > 0 {
		// 1) Read the priority before popping so stale copies can be told apart.
		_, d, _ := r.pq.Peek()
		current, err := r.pq.Dequeue()
		if err != nil {
			return // unreachable: Len was checked
		}

		// 2) Early exit: end's distance is final once popped.
		if current == end {
			r.count(func(s *Stats) { s.Settled++ })
			return
		}

		// 3) Stale copy: a cheaper entry for current was already expanded.
		if d > r.distance(current) {
			r.count(func(s *Stats) { s.Stale++ })
			continue
		}
		r.count(func(s *Stats) { s.Settled++ })

		// 4) Relax eligible neighbors.
		r.relax(current)
	}
}

// relax tries to improve every neighbor of u that the floor rule lets us reach.
func (r *runner) relax(u core.NodeID) {
	if r.m == nil {
		return
	}
	from, ok := r.m.Node(u)
	if !ok {
		return
	}

	du := r.distance(u)
	for _, nb := range r.m.Neighbors(u) {
		to, exists := r.m.Node(nb.ID)
		if !exists {
			continue
		}

		// Floor-transition rule, evaluated per traversal.
		if !CanTraverse(from, to) {
			r.count(func(s *Stats) { s.Skipped++ })
			continue
		}

		// Strict improvement only; equal costs keep the first predecessor found.
		candidate := du + float64(nb.Weight)
		if candidate >= r.distance(nb.ID) {
			continue
		}

		r.dist[nb.ID] = candidate
		r.prev[nb.ID] = u
		r.pq.Enqueue(nb.ID, candidate)
		r.count(func(s *Stats) {
			s.Relaxed++
			s.Pushed++
		})
	}
}

// reconstruct walks predecessor links back from end.
func (r *runner) reconstruct(start, end core.NodeID) Path {
	cost := r.distance(end)
	if math.IsInf(cost, 1) {
		return Path{Nodes: []core.NodeID{start}, Cost: cost}
	}

	var rev []core.NodeID
	for step := end; ; step = r.prev[step] {
		rev = append(rev, step)
		if step == start || r.prev[step] == core.NoNode {
			break
		}
	}

	// Reverse into start→end order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return Path{Nodes: rev, Cost: cost}
}

// distance returns the tentative distance of id; unknown ids are +Inf.
func (r *runner) distance(id core.NodeID) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// count applies fn to the stats sink when one is configured.
func (r *runner) count(fn func(*Stats)) {
	if r.options.Stats != nil {
		fn(r.options.Stats)
	}
}
