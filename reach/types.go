// SPDX-License-Identifier: MIT
package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors for reachability queries.
var (
	// ErrStartNotFound is returned when the start handle is not in the map.
	ErrStartNotFound = errors.New("reach: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures Reachable via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Reachable runs.
type Option func(*Options)

// Options holds parameters and callbacks for one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops expanding beyond this many hops.
	MaxDepth int

	// Filter can reject a step from → to by returning false. It runs after
	// the floor rule, so it never sees an illegal transition.
	Filter func(from, to *core.Node) bool

	// OnVisit is called for each node in visit order. A non-nil error stops
	// the traversal and is returned wrapped.
	OnVisit func(id core.NodeID, depth int) error

	err error
}

// DefaultOptions returns a background context, no depth limit, no filter and
// a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		Filter:   func(_, _ *core.Node) bool { return true },
		OnVisit:  func(core.NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal to d hops.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips steps for which fn returns false.
func WithFilter(fn func(from, to *core.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithOnVisit registers a callback run on every visited node.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order:  nodes in visit sequence, start first.
//   - Depth:  hop count from the start.
//   - Parent: predecessor in the breadth-first tree (absent for the start).
type Result struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Has reports whether id was reached.
func (r *Result) Has(id core.NodeID) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the fewest-hops walk from the start to dest.
// It returns nil if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) []core.NodeID {
	if !r.Has(dest) {
		return nil
	}
	var path []core.NodeID
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Verdict classifies the connectivity between two handles.
type Verdict int

const (
	// Missing means at least one handle is not in the map.
	Missing Verdict = iota
	// SameNode means both handles name the same node.
	SameNode
	// Connected means a legal walk exists.
	Connected
	// Disconnected means both nodes exist but no legal walk joins them.
	Disconnected
)

// String returns a short lowercase name for v.
func (v Verdict) String() string {
	switch v {
	case Missing:
		return "missing"
	case SameNode:
		return "same-node"
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	}

	return fmt.Sprintf("verdict(%d)", int(v))
}
