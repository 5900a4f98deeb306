package corpus

import (
	"fmt"
	"slices"
)

const (
	DefaultBatchSize     = 10
	DefaultMinViolations = 1
	DefaultMaxViolations = 4

	// Heuristic bounds of analyzer findings per orchestrator method.
	DefaultExpectedLow  = 4
	DefaultExpectedHigh = 5

	DefaultFileExtension = ".cs"
	DefaultSummaryName   = "CodebaseSummary.txt"
	DefaultManifestName  = "CodebaseManifest.yaml"

	// Bounds written into the activity delay call.
	DefaultDelayMin = 10
	DefaultDelayMax = 100
)

var defaultCatalog = []string{
	"DateTime.Now",
	"DateTime.UtcNow",
	"Guid.NewGuid()",
	"new Random().Next()",
	`Environment.GetEnvironmentVariable("TEST")`,
	"Thread.Sleep(1000)",
	"Task.Delay(1000)",
	`File.ReadAllText("test.txt")`,
	`HttpClient.GetAsync("https://example.com")`,
	"Task.Run(() => {})",
}

// DefaultCatalog returns a copy of the built-in violation catalog.
func DefaultCatalog() []string {
	return slices.Clone(defaultCatalog)
}

// DefaultProfiles returns the three stock profiles in generation order.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Kind:            KindOrchestrator,
			Label:           "Azure Functions Orchestrators",
			Classes:         50,
			MethodsPerClass: 8,
			FilePrefix:      "Azure_Orchestrator",
			NamespaceFormat: "Performance.Azure.Batch%d",
			ClassFormat:     "TestOrchestrator%03d",
		},
		{
			Kind:            KindActivity,
			Label:           "Azure Functions Activities",
			Classes:         30,
			MethodsPerClass: 5,
			FilePrefix:      "Azure_Activity",
			NamespaceFormat: "Performance.Azure.Activities.Batch%d",
			ClassFormat:     "TestActivity%03d",
		},
		{
			Kind:            KindAlternateOrchestrator,
			Label:           "DTF Core Orchestrators",
			Classes:         25,
			MethodsPerClass: 6,
			FilePrefix:      "DTF_Orchestrator",
			NamespaceFormat: "Performance.DTF.Batch%d",
			ClassFormat:     "DtfOrchestrator%03d",
		},
	}
}

// Config holds every generation parameter. It is treated as immutable once
// handed to New; the generator keeps its own copy.
type Config struct {
	Profiles      []Profile
	Violations    []string
	MinViolations int
	MaxViolations int
	BatchSize     int

	ExpectedLow  int
	ExpectedHigh int

	DelayMin int
	DelayMax int

	FileExtension string
	SummaryName   string
	ManifestName  string

	// Seed for violation sampling. Zero means pick one at random; the seed
	// actually used is recorded in the manifest.
	Seed uint64
}

// DefaultConfig returns the stock configuration: 105 files, 700 methods.
func DefaultConfig() Config {
	return Config{
		Profiles:      DefaultProfiles(),
		Violations:    DefaultCatalog(),
		MinViolations: DefaultMinViolations,
		MaxViolations: DefaultMaxViolations,
		BatchSize:     DefaultBatchSize,
		ExpectedLow:   DefaultExpectedLow,
		ExpectedHigh:  DefaultExpectedHigh,
		DelayMin:      DefaultDelayMin,
		DelayMax:      DefaultDelayMax,
		FileExtension: DefaultFileExtension,
		SummaryName:   DefaultSummaryName,
		ManifestName:  DefaultManifestName,
	}
}

func (c Config) clone() Config {
	c.Profiles = slices.Clone(c.Profiles)
	c.Violations = slices.Clone(c.Violations)
	return c
}

// Validate checks the config for values the generator cannot honor.
func (c Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: no profiles", ErrInvalidConfig)
	}
	if len(c.Violations) == 0 {
		return fmt.Errorf("%w: empty violation catalog", ErrInvalidConfig)
	}
	if c.MinViolations < 1 {
		return fmt.Errorf("%w: min violations must be at least 1, got %d", ErrInvalidConfig, c.MinViolations)
	}
	if c.MaxViolations < c.MinViolations {
		return fmt.Errorf("%w: max violations %d below min %d", ErrInvalidConfig, c.MaxViolations, c.MinViolations)
	}
	if c.MinViolations > len(c.Violations) {
		return fmt.Errorf("%w: min violations %d exceeds catalog size %d", ErrInvalidConfig, c.MinViolations, len(c.Violations))
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidConfig, c.BatchSize)
	}
	if c.ExpectedLow < 0 || c.ExpectedHigh < c.ExpectedLow {
		return fmt.Errorf("%w: expected range %d-%d", ErrInvalidConfig, c.ExpectedLow, c.ExpectedHigh)
	}
	if c.DelayMin < 0 || c.DelayMax <= c.DelayMin {
		return fmt.Errorf("%w: delay bounds [%d,%d)", ErrInvalidConfig, c.DelayMin, c.DelayMax)
	}
	if c.SummaryName == "" || c.ManifestName == "" {
		return fmt.Errorf("%w: summary and manifest names are required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if _, ok := kindNames[p.Kind]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownProfile, int(p.Kind))
		}
		if p.Classes < 0 || p.MethodsPerClass < 0 {
			return fmt.Errorf("%w: profile %s has negative counts", ErrInvalidConfig, p.FilePrefix)
		}
		if p.FilePrefix == "" || p.NamespaceFormat == "" || p.ClassFormat == "" {
			return fmt.Errorf("%w: profile %s is missing naming formats", ErrInvalidConfig, p.Kind)
		}
		if seen[p.FilePrefix] {
			return fmt.Errorf("%w: duplicate file prefix %q", ErrInvalidConfig, p.FilePrefix)
		}
		seen[p.FilePrefix] = true
	}

	return nil
}
