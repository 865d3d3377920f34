// SPDX-License-Identifier: MIT
package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// queueItem pairs a node with its hop depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	m     *core.BuildingMap
	opts  Options
	queue []queueItem
	res   *Result
}

// Reachable runs a breadth-first traversal of m from start.
// Steps are taken only where route.CanTraverse allows them.
//
// Returns ErrStartNotFound for a start outside m (or a nil m),
// ErrOptionViolation for bad options, the context error on cancellation,
// or the wrapped OnVisit error.
func Reachable(m *core.BuildingMap, start core.NodeID, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if m == nil || !m.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := m.Len()
	w := &walker{
		m:     m,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0, core.NoNode)

	return w.res, w.loop()
}

// enqueue marks id seen at depth d and records its parent.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.res.Depth[id] = d
	if parent != core.NoNode {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("reach: OnVisit error at %d: %w", item.id, err)
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues every unseen neighbor that the floor rule, the filter and
// the depth limit admit.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	from, _ := w.m.Node(item.id)
	for _, nb := range w.m.Neighbors(item.id) {
		if _, seen := w.res.Depth[nb.ID]; seen {
			continue
		}
		to, ok := w.m.Node(nb.ID)
		if !ok || !route.CanTraverse(from, to) || !w.opts.Filter(from, to) {
			continue
		}
		w.enqueue(nb.ID, next, item.id)
	}
}

// Components partitions m into groups of mutually reachable nodes.
// Groups are listed in order of their first node's insertion, and each
// group lists its nodes in breadth-first order from that first node.
// A nil map yields nil.
func Components(m *core.BuildingMap) [][]core.NodeID {
	if m == nil {
		return nil
	}
	seen := make(map[core.NodeID]bool, m.Len())
	var out [][]core.NodeID
	for _, id := range m.Nodes() {
		if seen[id] {
			continue
		}
		res, err := Reachable(m, id)
		if err != nil {
			continue // id is in m and no options are set
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out
}

// errFound stops Diagnose as soon as the target is visited.
var errFound = errors.New("reach: target found")

// Diagnose classifies the pair (a, b) without computing costs.
func Diagnose(m *core.BuildingMap, a, b core.NodeID) Verdict {
	if m == nil || !m.Has(a) || !m.Has(b) {
		return Missing
	}
	if a == b {
		return SameNode
	}

	_, err := Reachable(m, a, WithOnVisit(func(id core.NodeID, _ int) error {
		if id == b {
			return errFound
		}
		return nil
	}))
	if errors.Is(err, errFound) {
		return Connected
	}

	return Disconnected
}
