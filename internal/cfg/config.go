// Package cfg binds the command line, environment and an optional YAML
// config file into the options of a corpus generation run.
package cfg

import (
	"fmt"
	"path/filepath"

	"github.com/kardianos/osext"

	"pkg.jsn.cam/perfcorpus/pkg/corpus"
	"pkg.jsn.cam/perfcorpus/pkg/storage"
)

const DefaultArchiveName = "corpus.db"

// Options is the decoded form of every setting the command accepts.
type Options struct {
	OutputDir   string        `mapstructure:"output-dir"`
	Backend     storage.Kind  `mapstructure:"backend"`
	ArchivePath string        `mapstructure:"archive-path"`
	Seed        uint64        `mapstructure:"seed"`
	Progress    bool          `mapstructure:"progress"`
	Verbose     bool          `mapstructure:"verbose"`
	Corpus      CorpusOptions `mapstructure:"corpus"`
}

// CorpusOptions overrides the built-in corpus layout. Zero values keep the
// defaults; a non-empty profile list replaces the stock profiles entirely.
type CorpusOptions struct {
	Profiles              []ProfileOptions `mapstructure:"profiles"`
	Violations            []string         `mapstructure:"violations"`
	MinViolations         int              `mapstructure:"min-violations"`
	MaxViolations         int              `mapstructure:"max-violations"`
	BatchSize             int              `mapstructure:"batch-size"`
	ExpectedPerMethodLow  int              `mapstructure:"expected-per-method-low"`
	ExpectedPerMethodHigh int              `mapstructure:"expected-per-method-high"`
}

type ProfileOptions struct {
	Kind       corpus.Kind `mapstructure:"kind"`
	Label      string      `mapstructure:"label"`
	Classes    int         `mapstructure:"classes"`
	Methods    int         `mapstructure:"methods"`
	FilePrefix string      `mapstructure:"file-prefix"`
	Namespace  string      `mapstructure:"namespace"`
	Class      string      `mapstructure:"class"`
}

// CorpusConfig merges the options over corpus.DefaultConfig and validates
// the result.
func (o Options) CorpusConfig() (corpus.Config, error) {
	c := corpus.DefaultConfig()
	c.Seed = o.Seed

	co := o.Corpus
	if len(co.Profiles) > 0 {
		c.Profiles = make([]corpus.Profile, len(co.Profiles))
		for i, p := range co.Profiles {
			label := p.Label
			if label == "" {
				label = p.Kind.String()
			}
			c.Profiles[i] = corpus.Profile{
				Kind:            p.Kind,
				Label:           label,
				Classes:         p.Classes,
				MethodsPerClass: p.Methods,
				FilePrefix:      p.FilePrefix,
				NamespaceFormat: p.Namespace,
				ClassFormat:     p.Class,
			}
		}
	}
	if len(co.Violations) > 0 {
		c.Violations = co.Violations
	}
	if co.MinViolations != 0 {
		c.MinViolations = co.MinViolations
	}
	if co.MaxViolations != 0 {
		c.MaxViolations = co.MaxViolations
	}
	if co.BatchSize != 0 {
		c.BatchSize = co.BatchSize
	}
	if co.ExpectedPerMethodLow != 0 {
		c.ExpectedLow = co.ExpectedPerMethodLow
	}
	if co.ExpectedPerMethodHigh != 0 {
		c.ExpectedHigh = co.ExpectedPerMethodHigh
	}

	if err := c.Validate(); err != nil {
		return corpus.Config{}, err
	}
	return c, nil
}

// Target resolves where artifacts go: the backend kind and the path handed to
// storage.Open. Without an output directory the corpus is written next to the
// running executable.
func (o Options) Target() (storage.Kind, string, error) {
	dir := o.OutputDir
	if dir == "" {
		exeDir, err := osext.ExecutableFolder()
		if err != nil {
			return "", "", fmt.Errorf("locating executable directory: %w", err)
		}
		dir = exeDir
	}

	switch o.Backend {
	case storage.KindDir, "":
		return storage.KindDir, dir, nil
	case storage.KindBbolt:
		if o.ArchivePath != "" {
			return storage.KindBbolt, o.ArchivePath, nil
		}
		return storage.KindBbolt, filepath.Join(dir, DefaultArchiveName), nil
	case storage.KindMemory:
		return storage.KindMemory, "", nil
	default:
		return "", "", fmt.Errorf("%w: %q", storage.ErrUnknownBackend, o.Backend)
	}
}
