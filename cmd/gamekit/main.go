// SPDX-License-Identifier: MIT

// Command gamekit solves two-player games from files or over HTTP.
//
//	gamekit solve -f game.yaml [--op all|nash|minimax|dominance]
//	gamekit serve [--addr :8080]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
