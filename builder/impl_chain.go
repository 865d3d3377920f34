// SPDX-License-Identifier: MIT
//
// impl_chain.go - Chain(n, weight): n rooms on one floor joined in a line.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes); weight ≥ 0 (else core.ErrInvalidWeight).
//   - Labels "N0".."N{n-1}", X = i*DefaultSpacing, floor 1, building 1.
//   - Edges (i-1)–i in increasing i, every edge priced at weight.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that lays out a straight line of n rooms.
// The configured weight policy is ignored: every edge costs weight.
func Chain(n int, weight int64) Constructor {
	return func(m *core.BuildingMap, _ builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}
		if weight < 0 {
			return fmt.Errorf("%s: weight=%d: %w", methodChain, weight, core.ErrInvalidWeight)
		}

		prev := core.NoNode
		for i := 0; i < n; i++ {
			id := m.AddNode(core.NewNode("N"+strconv.Itoa(i), i*DefaultSpacing, 0, 1, 1, core.Room))
			if prev != core.NoNode {
				if err := m.AddEdge(prev, id, weight); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodChain, prev, id, err)
				}
			}
			prev = id
		}

		return nil
	}
}
