// Command solvexplain explains why a set of packages cannot be installed
// together, given a problems graph saved as a Starlark or YAML document.
//
// Usage:
//
//	solvexplain explain problems.bzl
//	solvexplain roots problems.yaml
//	solvexplain paths problems.yaml
//	solvexplain graph --format dot problems.bzl | dot -Tsvg > problems.svg
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
