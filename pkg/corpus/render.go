package corpus

import (
	"fmt"
	"io"
	"slices"
)

// MethodRecord lists the violation expressions injected into one method.
// Activity methods have none.
type MethodRecord struct {
	Name       string   `yaml:"name"`
	Violations []string `yaml:"violations,omitempty"`
}

// renderFunc writes one class and reports what went into each method.
type renderFunc func(g *Generator, w io.Writer, class ClassSpec) ([]MethodRecord, error)

// renderers maps each profile kind to its class renderer.
var renderers = map[Kind]renderFunc{
	KindOrchestrator:          (*Generator).RenderOrchestrator,
	KindActivity:              (*Generator).RenderActivity,
	KindAlternateOrchestrator: (*Generator).RenderAlternateOrchestrator,
}

// SelectViolations draws a random number of distinct catalog entries, between
// the configured minimum and maximum, without replacement. The count never
// exceeds the catalog size.
func (g *Generator) SelectViolations() []string {
	hi := min(g.cfg.MaxViolations, len(g.cfg.Violations))
	k := g.cfg.MinViolations + g.rand.IntN(hi-g.cfg.MinViolations+1)

	pool := slices.Clone(g.cfg.Violations)
	for i := 0; i < k; i++ {
		j := i + g.rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}

// RenderOrchestrator writes an orchestrator class whose methods each bind a
// fresh violation subset to temp locals before calling two activities.
func (g *Generator) RenderOrchestrator(w io.Writer, class ClassSpec) ([]MethodRecord, error) {
	return g.renderInjected(w, "orchestrator", "Method%dAsync", class)
}

// RenderAlternateOrchestrator is RenderOrchestrator for the Durable Task
// Framework flavour: different usings, no function attributes, Dtf-prefixed
// activity names.
func (g *Generator) RenderAlternateOrchestrator(w io.Writer, class ClassSpec) ([]MethodRecord, error) {
	return g.renderInjected(w, "alternate-orchestrator", "Method%dAsync", class)
}

// RenderActivity writes an activity class. The bodies are fixed and consume
// no randomness; the non-deterministic calls in them must not be flagged.
func (g *Generator) RenderActivity(w io.Writer, class ClassSpec) ([]MethodRecord, error) {
	view := g.newView(class)
	records := make([]MethodRecord, class.MethodCount())
	for i := range class.MethodCount() {
		view.Methods = append(view.Methods, methodView{Index: i, ActivitySlot: i % 10})
		records[i] = MethodRecord{Name: fmt.Sprintf("Activity%dAsync", i)}
	}

	if err := classTemplates.ExecuteTemplate(w, "activity", view); err != nil {
		return nil, fmt.Errorf("render activity %s: %w", class.ClassName, err)
	}
	return records, nil
}

func (g *Generator) renderInjected(w io.Writer, tmpl, methodName string, class ClassSpec) ([]MethodRecord, error) {
	view := g.newView(class)
	records := make([]MethodRecord, class.MethodCount())

	for i := range class.MethodCount() {
		picked := g.SelectViolations()
		locals := make([]localView, len(picked))
		for j, expr := range picked {
			locals[j] = localView{Name: fmt.Sprintf("temp%d", j), Expr: expr}
		}

		view.Methods = append(view.Methods, methodView{
			Index:        i,
			ActivitySlot: i % 10,
			Locals:       locals,
		})
		records[i] = MethodRecord{Name: fmt.Sprintf(methodName, i), Violations: picked}
	}

	if err := classTemplates.ExecuteTemplate(w, tmpl, view); err != nil {
		return nil, fmt.Errorf("render %s %s: %w", tmpl, class.ClassName, err)
	}
	return records, nil
}

func (g *Generator) newView(class ClassSpec) classView {
	return classView{
		Namespace: class.Namespace,
		ClassName: class.ClassName,
		DelayMin:  g.cfg.DelayMin,
		DelayMax:  g.cfg.DelayMax,
		Methods:   make([]methodView, 0, class.MethodCount()),
	}
}
