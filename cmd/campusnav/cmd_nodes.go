// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/core"
)

func newNodesCmd(a *app) *cobra.Command {
	var floor, building int
	var kind string

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List the places on the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var want *core.Kind
			if kind != "" {
				k, err := core.ParseKind(kind)
				if err != nil {
					return err
				}
				want = &k
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL\tBUILDING\tFLOOR\tKIND\tDEGREE")
			a.planner.View(func(m *core.BuildingMap) {
				for _, id := range m.Filter(floor, building) {
					n, _ := m.Node(id)
					if want != nil && n.Kind != *want {
						continue
					}
					fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%d\n", id, n.Label, n.Building, n.Floor, n.Kind, n.Degree())
				}
			})

			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&floor, "floor", 0, "only this floor (0 = all)")
	cmd.Flags().IntVar(&building, "building", 0, "only this building (0 = all)")
	cmd.Flags().StringVar(&kind, "kind", "", "only this kind: room, connector, transition")

	return cmd
}
