// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the cheapest walk between two labelled places",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Route(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Reachable() {
				from, _ := a.planner.Resolve(args[0])
				to, _ := a.planner.Resolve(args[1])
				fmt.Fprintf(out, "no route from %q to %q (%s)\n", args[0], args[1], a.planner.Diagnose(from, to))
				return nil
			}

			fmt.Fprintf(out, "route %s: cost %g, %d hops\n", res.QueryID, res.Path.Cost, res.Path.Hops())
			for i, st := range res.Steps {
				fmt.Fprintf(out, "%3d. [B%d F%d] %s\n", i+1, st.Building, st.Floor, st.Text)
			}

			return nil
		},
	}
}
