package corpus

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"pkg.jsn.cam/perfcorpus/pkg/storage"
)

// Generator lays out, renders and writes one corpus. It is not safe for
// concurrent use: all sampling draws from a single seeded source.
type Generator struct {
	cfg  Config
	seed uint64
	rand *rand.Rand
}

// Observer is notified after each class artifact has been written.
type Observer func(class ClassSpec, size int)

// Result describes a completed run.
type Result struct {
	Summary  Summary
	Manifest Manifest

	// Bytes is the total size of every artifact written, summary included.
	Bytes int64
}

// New validates cfg and returns a generator holding a private copy of it.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg = cfg.clone()
	seed := cfg.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	return &Generator{
		cfg:  cfg,
		seed: seed,
		rand: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Seed returns the seed driving violation sampling.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg.clone()
}

// Plan returns every class of the corpus in generation order.
func (g *Generator) Plan() []ClassSpec {
	var specs []ClassSpec
	for _, p := range g.cfg.Profiles {
		for i := range p.Classes {
			specs = append(specs, ClassSpec{
				Profile:   p,
				Index:     i,
				Namespace: fmt.Sprintf(p.NamespaceFormat, i/g.cfg.BatchSize),
				ClassName: fmt.Sprintf(p.ClassFormat, i),
				FileName:  fmt.Sprintf("%s_%03d%s", p.FilePrefix, i, g.cfg.FileExtension),
			})
		}
	}
	return specs
}

// Render writes a single class using the renderer registered for its kind.
func (g *Generator) Render(w io.Writer, class ClassSpec) ([]MethodRecord, error) {
	render, ok := renderers[class.Profile.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRenderer, class.Profile.Kind)
	}
	return render(g, w, class)
}

// Generate renders every planned class into backend, then writes the summary
// and the manifest. It stops at the first failure; artifacts already written
// are left in place.
func (g *Generator) Generate(backend storage.Backend, observe Observer) (*Result, error) {
	manifest := Manifest{
		RunID: uuid.NewString(),
		Seed:  g.seed,
	}

	var (
		buf   bytes.Buffer
		total int64
	)
	for _, class := range g.Plan() {
		buf.Reset()
		methods, err := g.Render(&buf, class)
		if err != nil {
			return nil, err
		}

		if err := backend.Put(class.FileName, buf.Bytes()); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrWriteArtifact, class.FileName, err)
		}
		total += int64(buf.Len())

		manifest.add(class, methods)
		if observe != nil {
			observe(class, buf.Len())
		}
	}

	summary := ComputeSummary(g.cfg).Measured(manifest)
	report := []byte(summary.Render())
	if err := backend.Put(g.cfg.SummaryName, report); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWriteArtifact, g.cfg.SummaryName, err)
	}
	total += int64(len(report))

	if err := storage.NewYAMLStore(backend).PutYAML(g.cfg.ManifestName, manifest); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWriteArtifact, g.cfg.ManifestName, err)
	}

	log.Printf("[GEN] Run %s (seed %d): %d classes, %d injected violations",
		manifest.RunID, g.seed, len(manifest.Files), manifest.InjectedViolations)

	return &Result{Summary: summary, Manifest: manifest, Bytes: total}, nil
}
