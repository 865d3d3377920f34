// SPDX-License-Identifier: MIT
//
// options.go - builder configuration and functional options.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.
package builder

import "github.com/katalvlaran/campusnav/core"

// WeightFn prices the edge between two freshly placed nodes.
type WeightFn func(a, b *core.Node) int64

// DistanceWeight is the default policy: the truncated Euclidean distance.
func DistanceWeight(a, b *core.Node) int64 { return core.Distance(a, b) }

// FixedWeight returns a policy that prices every edge at w.
// Panics if w < 0.
func FixedWeight(w int64) WeightFn {
	if w < 0 {
		panic("builder: FixedWeight(w<0)")
	}
	return func(_, _ *core.Node) int64 { return w }
}

// Deterministic defaults.
const (
	// DefaultStairWeight prices one flight of stairs between adjacent landings.
	DefaultStairWeight int64 = 50
	// DefaultSpacing is the distance between neighbouring corridor junctions.
	DefaultSpacing = 50
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	weightFn    WeightFn // horizontal edges
	stairWeight int64    // vertical edges between landings
}

// newBuilderConfig applies opts over the defaults, last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn:    DistanceWeight,
		stairWeight: DefaultStairWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes the builder configuration.
type Option func(*builderConfig)

// WithWeightFn overrides the horizontal weight policy. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithStairWeight sets the cost of one flight between adjacent landings.
// Panics if w < 0.
func WithStairWeight(w int64) Option {
	if w < 0 {
		panic("builder: WithStairWeight(w<0)")
	}
	return func(c *builderConfig) {
		c.stairWeight = w
	}
}
