package corpus

import "fmt"

// Kind identifies which class template a profile renders.
type Kind int

const (
	KindOrchestrator Kind = iota
	KindActivity
	KindAlternateOrchestrator
)

var kindNames = map[Kind]string{
	KindOrchestrator:          "orchestrator",
	KindActivity:              "activity",
	KindAlternateOrchestrator: "alternate-orchestrator",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// InjectsViolations reports whether methods of this kind embed catalog entries.
func (k Kind) InjectsViolations() bool {
	return k == KindOrchestrator || k == KindAlternateOrchestrator
}

func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProfile, int(k))
	}
	return []byte(name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownProfile, text)
}

// Profile describes one batch of generated classes.
type Profile struct {
	Kind            Kind
	Label           string
	Classes         int
	MethodsPerClass int
	FilePrefix      string
	NamespaceFormat string // formatted with the batch number
	ClassFormat     string // formatted with the class index
}

// Methods is the number of methods the profile contributes to the corpus.
func (p Profile) Methods() int {
	return p.Classes * p.MethodsPerClass
}

// ClassSpec is the procedurally derived layout of a single generated class.
type ClassSpec struct {
	Profile   Profile
	Index     int
	Namespace string
	ClassName string
	FileName  string
}

// MethodCount returns the number of methods rendered into the class.
func (c ClassSpec) MethodCount() int {
	return c.Profile.MethodsPerClass
}
