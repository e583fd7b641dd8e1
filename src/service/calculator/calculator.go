package calculator

import (
	"quality-metrics/src/model"
	"quality-metrics/src/service/index"
	"quality-metrics/src/service/walker"
	"quality-metrics/src/util"
)

// MethodContext is the input of a method-scoped calculator
type MethodContext struct {
	Class  *model.ClassModel
	Method *model.MethodModel
	Trace  *walker.Trace
}

// ClassContext is the input of a class-scoped calculator. Traces holds the
// walked bodies of the measured methods of the class.
type ClassContext struct {
	Class  *model.ClassModel
	Index  *index.Index
	Types  *util.TypeTable
	Traces []*walker.Trace
}

// MethodCalculator computes one method-scoped metric. The boolean result is
// false when the metric is undefined for the method.
type MethodCalculator interface {
	Key() model.MetricKey
	Method(ctx *MethodContext) (float64, bool)
}

// ClassCalculator computes one class-scoped metric. An error means the class
// violates a model invariant and none of its metrics can be trusted.
type ClassCalculator interface {
	Key() model.MetricKey
	Class(ctx *ClassContext) (float64, bool, error)
}

// Registry holds the calculators a run uses
type Registry struct {
	methods []MethodCalculator
	classes []ClassCalculator
}

// NewRegistry creates a registry with every calculator, restricted to the
// enabled keys when any are given
func NewRegistry(enabled []string) *Registry {
	allow := make(map[model.MetricKey]bool, len(enabled))
	for _, k := range enabled {
		allow[model.MetricKey(k)] = true
	}
	keep := func(k model.MetricKey) bool {
		return len(allow) == 0 || allow[k]
	}

	r := &Registry{}
	for _, c := range []MethodCalculator{
		Cyclomatic{},
		Cognitive{},
		ConditionNesting{},
		LoopNesting{},
		MaxNesting{},
		LoopCount{},
		Parameters{},
		Locality{},
		ForeignProviders{},
		AccessedVariables{},
		MessagePassing{},
		CouplingIntensity{},
		CouplingDispersion{},
	} {
		if keep(c.Key()) {
			r.methods = append(r.methods, c)
		}
	}
	for _, c := range []ClassCalculator{
		ForeignData{},
		CouplingBetweenObjects{},
		PublicAttributes{},
		Accessors{},
		Attributes{},
		MethodCount{},
		WeightedMethods{},
		InheritanceDepth{},
		Children{},
		OverriddenMethods{},
		Operations{},
		ResponseForClass{},
		DataAbstraction{},
		LackOfCohesion{},
		TightCohesion{},
	} {
		if keep(c.Key()) {
			r.classes = append(r.classes, c)
		}
	}

	util.Debug("Calculator registry: %d method, %d class calculators", len(r.methods), len(r.classes))
	return r
}

// MethodCalculators returns the registered method calculators
func (r *Registry) MethodCalculators() []MethodCalculator {
	return r.methods
}

// ClassCalculators returns the registered class calculators
func (r *Registry) ClassCalculators() []ClassCalculator {
	return r.classes
}

// Keys lists the keys of all registered calculators
func (r *Registry) Keys() []model.MetricKey {
	keys := make([]model.MetricKey, 0, len(r.methods)+len(r.classes))
	for _, c := range r.methods {
		keys = append(keys, c.Key())
	}
	for _, c := range r.classes {
		keys = append(keys, c.Key())
	}
	return keys
}

func controlEvents(tr *walker.Trace) []model.ControlEvent {
	var out []model.ControlEvent
	for _, e := range tr.Events {
		if c, ok := e.(model.ControlEvent); ok {
			out = append(out, c)
		}
	}
	return out
}

// foreignReceiver identifies a foreign object by variable name, falling
// back to its type when the front-end gave no name
func foreignReceiver(name, typ string) string {
	if name != "" {
		return name
	}
	return util.NormalizeType(typ)
}

// foreignType identifies the declaring type reached through a receiver
func foreignType(name, typ string) string {
	if typ != "" {
		return util.NormalizeType(typ)
	}
	return name
}
