// Command perfcorpus writes a synthetic C# codebase for load-testing a
// determinism analyzer: orchestrator classes seeded with non-deterministic
// calls, activity classes that must stay clean, and a summary of the counts
// the analyzer is expected to report.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
