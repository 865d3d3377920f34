// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/core"
)

// errDisconnected is returned by check --strict when the map is split.
var errDisconnected = errors.New("map is not connected")

// maxListed caps the labels printed per stranded group.
const maxListed = 5

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report map size and places that cannot reach each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			st := a.planner.Stats()
			fmt.Fprintf(out, "nodes %d, edges %d, connectors %d, transitions %d, buildings %d, levels %d\n",
				st.Nodes, st.Edges, st.Connectors, st.Transitions, st.Buildings, st.Floors)

			comps := a.planner.Components()
			if len(comps) <= 1 {
				fmt.Fprintln(out, "connected: every place reaches every other")
				return nil
			}

			fmt.Fprintf(out, "%d separate groups\n", len(comps))
			a.planner.View(func(m *core.BuildingMap) {
				for i, c := range comps {
					labels := make([]string, 0, maxListed)
					for _, id := range c {
						if len(labels) == maxListed {
							labels = append(labels, "…")
							break
						}
						n, _ := m.Node(id)
						labels = append(labels, n.Label)
					}
					fmt.Fprintf(out, "  group %d (%d places): %s\n", i+1, len(c), strings.Join(labels, ", "))
				}
			})
			a.logger.Warn("map has unreachable places", "groups", len(comps))

			if strict {
				return fmt.Errorf("%w: %d groups", errDisconnected, len(comps))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the map is not connected")

	return cmd
}
