// SPDX-License-Identifier: MIT
// Command swarmcolor runs the decentralised graph-colouring experiment.
//
// Usage:
//
//	swarmcolor run [--config FILE] [flags]
//	swarmcolor config [--config FILE]
//
// Options resolve as defaults ← config file ← SWARMCOLOR_* environment ←
// command-line flags.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
