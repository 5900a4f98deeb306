package corpus

// Manifest records what a run actually injected, file by file.
type Manifest struct {
	RunID              string       `yaml:"run_id"`
	Seed               uint64       `yaml:"seed"`
	InjectedViolations int          `yaml:"injected_violations"`
	Files              []FileRecord `yaml:"files"`
}

// FileRecord is the manifest entry for one class artifact.
type FileRecord struct {
	File      string         `yaml:"file"`
	Profile   string         `yaml:"profile"`
	Namespace string         `yaml:"namespace"`
	Class     string         `yaml:"class"`
	Methods   []MethodRecord `yaml:"methods"`
}

// Violations counts the injected expressions in the file.
func (f FileRecord) Violations() int {
	n := 0
	for _, m := range f.Methods {
		n += len(m.Violations)
	}
	return n
}

func (m *Manifest) add(class ClassSpec, methods []MethodRecord) {
	rec := FileRecord{
		File:      class.FileName,
		Profile:   class.Profile.Kind.String(),
		Namespace: class.Namespace,
		Class:     class.ClassName,
		Methods:   methods,
	}
	m.Files = append(m.Files, rec)
	m.InjectedViolations += rec.Violations()
}
