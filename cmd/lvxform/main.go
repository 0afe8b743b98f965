// SPDX-License-Identifier: MIT

// lvxform applies a YAML-described transform chain to a set of points and
// reports the bounding box of the result.
//
// Usage:
//
//	lvxform bounds --job job.yaml [model.glb]
//
// Points come from the job file and, when given, from the POSITION
// attributes of a glTF/GLB model.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
