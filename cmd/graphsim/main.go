// Command graphsim compares pairs of capacity graphs with the heuristics in
// github.com/katalvlaran/graphsim.
package main

import (
	"fmt"
	"os"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("graphsim %s (commit: %s)", version, commit)
	}

	return fmt.Sprintf("graphsim %s-dev", version)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
