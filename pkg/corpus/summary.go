package corpus

import (
	"fmt"
	"strings"
)

// ProfileCount is the per-profile line of a summary.
type ProfileCount struct {
	Kind            Kind
	Label           string
	Classes         int
	MethodsPerClass int
	Methods         int
}

// Summary aggregates corpus counts. Everything except the injected count is
// computed in closed form from the configuration, not measured from output.
type Summary struct {
	Profiles            []ProfileCount
	TotalFiles          int
	TotalMethods        int
	OrchestratorMethods int
	ActivityMethods     int

	// Heuristic analyzer finding range: per-method bounds times the
	// orchestrator method total.
	PerMethodLow  int
	PerMethodHigh int
	ExpectedLow   int
	ExpectedHigh  int

	// Filled in by Measured after a run.
	HasInjected bool
	Injected    int
	Seed        uint64
	RunID       string
}

// ComputeSummary derives the corpus totals from cfg alone.
func ComputeSummary(cfg Config) Summary {
	s := Summary{
		PerMethodLow:  cfg.ExpectedLow,
		PerMethodHigh: cfg.ExpectedHigh,
	}

	for _, p := range cfg.Profiles {
		s.Profiles = append(s.Profiles, ProfileCount{
			Kind:            p.Kind,
			Label:           p.Label,
			Classes:         p.Classes,
			MethodsPerClass: p.MethodsPerClass,
			Methods:         p.Methods(),
		})
		s.TotalFiles += p.Classes
		s.TotalMethods += p.Methods()
		if p.Kind.InjectsViolations() {
			s.OrchestratorMethods += p.Methods()
		} else {
			s.ActivityMethods += p.Methods()
		}
	}

	s.ExpectedLow = cfg.ExpectedLow * s.OrchestratorMethods
	s.ExpectedHigh = cfg.ExpectedHigh * s.OrchestratorMethods

	return s
}

// Measured returns a copy of s carrying the injected count of a finished run.
func (s Summary) Measured(m Manifest) Summary {
	s.HasInjected = true
	s.Injected = m.InjectedViolations
	s.Seed = m.Seed
	s.RunID = m.RunID
	return s
}

// Render formats the summary as the comment-style report written next to the
// corpus.
func (s Summary) Render() string {
	var b strings.Builder

	b.WriteString("\n// PERFORMANCE TEST CODEBASE SUMMARY\n")
	fmt.Fprintf(&b, "// Generated %d files with %d total methods\n", s.TotalFiles, s.TotalMethods)
	b.WriteString("//\n")
	for _, p := range s.Profiles {
		role := "activity"
		if p.Kind.InjectsViolations() {
			role = "orchestrator"
		}
		fmt.Fprintf(&b, "// %s: %d classes × %d methods = %d %s methods\n",
			p.Label, p.Classes, p.MethodsPerClass, p.Methods, role)
	}
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// Total orchestrator methods: %d (should trigger analyzer rules)\n", s.OrchestratorMethods)
	fmt.Fprintf(&b, "// Total activity methods: %d (should not trigger analyzer rules)\n", s.ActivityMethods)
	fmt.Fprintf(&b, "// Expected analyzer violations: ~%d-%d (%d-%d violations per orchestrator method)\n",
		s.ExpectedLow, s.ExpectedHigh, s.PerMethodLow, s.PerMethodHigh)
	if s.HasInjected {
		fmt.Fprintf(&b, "// Injected violation expressions: %d (seed %d, run %s)\n", s.Injected, s.Seed, s.RunID)
	}

	return b.String()
}

// Headline is the two-line report printed when a run finishes.
func (s Summary) Headline() string {
	return fmt.Sprintf("Generated %d files with %d total methods\nExpected ~%d-%d analyzer violations to process\n",
		s.TotalFiles, s.TotalMethods, s.ExpectedLow, s.ExpectedHigh)
}
