// SPDX-License-Identifier: MIT
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/internal/metrics"
	"github.com/katalvlaran/campusnav/navigate"
	"github.com/katalvlaran/campusnav/reach"
	"github.com/katalvlaran/campusnav/route"
)

// Sentinel errors for label resolution.
var (
	// ErrUnknownLabel indicates no node carries the requested label.
	ErrUnknownLabel = errors.New("planner: unknown label")

	// ErrAmbiguousLabel indicates more than one node carries the requested label.
	ErrAmbiguousLabel = errors.New("planner: ambiguous label")
)

// Planner serialises access to one building map.
type Planner struct {
	mu      sync.RWMutex
	m       *core.BuildingMap
	logger  *slog.Logger
	metrics *metrics.Registry
	trace   bool
	now     func() time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger routes planner logs to l. A nil l keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics records queries and edits in r. A nil r keeps metrics.DefaultRegistry.
func WithMetrics(r *metrics.Registry) Option {
	return func(p *Planner) {
		if r != nil {
			p.metrics = r
		}
	}
}

// WithTrace enables the per-search debug record of the route package.
func WithTrace(on bool) Option {
	return func(p *Planner) {
		p.trace = on
	}
}

// New returns a Planner that takes ownership of m. A nil m starts empty.
// The caller must not touch m directly afterwards.
func New(m *core.BuildingMap, opts ...Option) *Planner {
	if m == nil {
		m = core.NewBuildingMap()
	}
	p := &Planner{
		m:       m,
		logger:  slog.New(slog.DiscardHandler),
		metrics: metrics.DefaultRegistry(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.metrics.UpdateMapSize(m.Len(), m.EdgeCount())

	return p
}

// Result is the answer to one route query.
type Result struct {
	QueryID uuid.UUID
	Path    route.Path
	Nodes   []core.Node // snapshot of the path nodes, in walk order
	Steps   []navigate.Step
	Stats   route.Stats
	Elapsed time.Duration
}

// Reachable reports whether a route was found.
func (r *Result) Reachable() bool { return r.Path.Reachable() }

// Labels returns the labels of the path nodes in walk order.
func (r *Result) Labels() []string {
	out := make([]string, len(r.Nodes))
	for i := range r.Nodes {
		out[i] = r.Nodes[i].Label
	}

	return out
}

// Route plans a walk between the nodes labelled from and to.
// Labels must each name exactly one node. An unreachable destination is not
// an error: the result has Path.Cost == +Inf.
func (p *Planner) Route(ctx context.Context, from, to string) (*Result, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	a, err := p.resolve(from)
	if err != nil {
		p.metrics.RecordRouteError()
		return nil, err
	}
	b, err := p.resolve(to)
	if err != nil {
		p.metrics.RecordRouteError()
		return nil, err
	}

	return p.route(ctx, a, b)
}

// RouteIDs plans a walk between two handles. Handles not in the map yield an
// unreachable result, as the search itself does.
func (p *Planner) RouteIDs(ctx context.Context, from, to core.NodeID) (*Result, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.route(ctx, from, to)
}

// route runs one search. The read lock must be held.
func (p *Planner) route(ctx context.Context, from, to core.NodeID) (*Result, error) {
	if err := ctx.Err(); err != nil {
		p.metrics.RecordRouteError()
		return nil, fmt.Errorf("planner: route %d→%d: %w", from, to, err)
	}

	res := &Result{QueryID: uuid.New()}
	opts := []route.Option{route.WithStats(&res.Stats)}
	if p.trace {
		opts = append(opts, route.WithLogger(p.logger.With("query_id", res.QueryID.String())))
	}

	start := p.now()
	res.Path = route.FindShortestPath(from, to, p.m, opts...)
	res.Elapsed = p.now().Sub(start)

	res.Nodes = make([]core.Node, 0, len(res.Path.Nodes))
	for _, id := range res.Path.Nodes {
		if n, ok := p.m.Node(id); ok {
			res.Nodes = append(res.Nodes, *n)
		}
	}
	res.Steps = navigate.Steps(p.m, res.Path)

	outcome := metrics.OutcomeFound
	if !res.Reachable() {
		outcome = metrics.OutcomeUnreachable
	}
	p.metrics.RecordRoute(outcome, res.Elapsed, res.Stats.Settled, res.Stats.Stale, res.Stats.Skipped, res.Path.Hops())

	if res.Reachable() {
		p.logger.Info("route planned",
			"query_id", res.QueryID.String(),
			"from", from,
			"to", to,
			"cost", res.Path.Cost,
			"hops", res.Path.Hops(),
			"elapsed", res.Elapsed,
		)
	} else {
		p.logger.Warn("route unreachable",
			"query_id", res.QueryID.String(),
			"from", from,
			"to", to,
			"verdict", reach.Diagnose(p.m, from, to).String(),
		)
	}

	return res, nil
}

// Resolve returns the handle of the single node labelled label.
func (p *Planner) Resolve(label string) (core.NodeID, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.resolve(label)
}

// resolve looks label up. The read lock must be held.
func (p *Planner) resolve(label string) (core.NodeID, error) {
	ids := p.m.FindByLabel(label)
	switch len(ids) {
	case 0:
		return core.NoNode, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	case 1:
		return ids[0], nil
	}

	return core.NoNode, fmt.Errorf("%w: %q names %d nodes", ErrAmbiguousLabel, label, len(ids))
}

// Edit applies fn to a private copy of the map and publishes the copy if fn
// returns nil. Queries running meanwhile see the old map; queries started
// after Edit returns see the new one. Handles are preserved by the copy.
func (p *Planner) Edit(fn func(m *core.BuildingMap) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	draft := p.m.Clone()
	err := fn(draft)
	p.metrics.RecordEdit(err)
	if err != nil {
		p.logger.Warn("map edit rejected", "error", err)
		return fmt.Errorf("planner: edit: %w", err)
	}

	draft.ClearSelection()
	p.m = draft
	p.metrics.UpdateMapSize(draft.Len(), draft.EdgeCount())
	p.logger.Info("map edited", "nodes", draft.Len(), "edges", draft.EdgeCount())

	return nil
}

// View runs fn with read access to the map. fn must not mutate it or retain
// it after returning.
func (p *Planner) View(fn func(m *core.BuildingMap)) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	fn(p.m)
}

// Diagnose classifies the connectivity between two handles.
func (p *Planner) Diagnose(from, to core.NodeID) reach.Verdict {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return reach.Diagnose(p.m, from, to)
}

// Components returns the groups of mutually reachable nodes.
func (p *Planner) Components() [][]core.NodeID {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return reach.Components(p.m)
}

// Stats returns a summary of the current map.
func (p *Planner) Stats() core.Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.m.Stats()
}
