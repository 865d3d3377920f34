// SPDX-License-Identifier: MIT
//
// Package route defines the path result, search statistics and functional
// options for the constrained shortest-path search over a core.BuildingMap.
//
// Options:
//
//	– WithStats:  collect counters about one search into a caller-owned Stats.
//	– WithLogger: emit a debug record per search through log/slog.
//
// Errors (sentinel), returned by Validate only; the search itself never fails:
//
//	– ErrBrokenPath        consecutive path nodes are not adjacent (or the path is empty).
//	– ErrIllegalTransition a step changes floor outside a connector pair.
//	– ErrCostMismatch      the edge weights do not add up to Path.Cost.
package route

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors returned by Validate.
var (
	// ErrBrokenPath indicates an empty path or a step over a missing edge.
	ErrBrokenPath = errors.New("route: path is not a walk over existing edges")

	// ErrIllegalTransition indicates a step that changes floor without both
	// endpoints being vertical connectors.
	ErrIllegalTransition = errors.New("route: illegal floor transition")

	// ErrCostMismatch indicates Path.Cost differs from the sum of traversed weights.
	ErrCostMismatch = errors.New("route: path cost does not match edge weights")
)

// Path is the result of one search: the visited nodes from start to end
// inclusive and the summed edge weight.
//
// An unreachable end is reported as Nodes == [start] and Cost == +Inf.
// This is a normal outcome, not an error; check Reachable.
//
// Cost is a float64 sum of int64 weights: it is exact while the total stays
// at or below 2^53 and rounds beyond that.
type Path struct {
	Nodes []core.NodeID
	Cost  float64
}

// Reachable reports whether the path has a finite cost.
func (p Path) Reachable() bool { return !math.IsInf(p.Cost, 1) }

// Hops returns the number of edges walked (0 for unreachable or start == end).
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Start returns the first node, or core.NoNode for an empty path.
func (p Path) Start() core.NodeID {
	if len(p.Nodes) == 0 {
		return core.NoNode
	}

	return p.Nodes[0]
}

// End returns the last node, or core.NoNode for an empty path.
func (p Path) End() core.NodeID {
	if len(p.Nodes) == 0 {
		return core.NoNode
	}

	return p.Nodes[len(p.Nodes)-1]
}

// Stats counts the work done by one search.
type Stats struct {
	Settled int // entries popped with their current best distance (expanded)
	Stale   int // entries popped after a cheaper copy was already expanded
	Relaxed int // strict improvements of a tentative distance
	Skipped int // neighbor entries rejected by the floor-transition rule
	Pushed  int // queue insertions, start included
}

// Options configures one search.
type Options struct {
	Stats  *Stats       // optional sink for counters; nil disables counting
	Logger *slog.Logger // debug trace sink; defaults to a discard logger
}

// Option represents a functional option for configuring FindShortestPath.
type Option func(*Options)

// WithStats directs counters of the search into s. s is reset first.
// A nil s disables counting.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithLogger routes the search trace to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns options with no stats sink and a discard logger.
func DefaultOptions() Options {
	return Options{
		Stats:  nil,
		Logger: slog.New(slog.DiscardHandler),
	}
}
