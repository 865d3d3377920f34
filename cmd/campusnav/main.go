// SPDX-License-Identifier: MIT

// Command campusnav plans walking routes through a multi-floor campus.
//
//	campusnav route "Entrance" "273"
//	campusnav nodes --floor 2
//	campusnav check --strict
//
// The map comes from the configuration: the built-in demo building or a
// generated campus (see internal/config).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "campusnav:", err)
		os.Exit(1)
	}
}
