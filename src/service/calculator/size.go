package calculator

import (
	"quality-metrics/src/model"
)

// Parameters (NOPM) counts declared parameters, receiver excluded
type Parameters struct{}

func (Parameters) Key() model.MetricKey { return model.KeyParameters }

func (Parameters) Method(ctx *MethodContext) (float64, bool) {
	return float64(len(ctx.Method.Parameters)), true
}

// PublicAttributes (NOPA) counts public non-synthetic fields, property
// declarations included
type PublicAttributes struct{}

func (PublicAttributes) Key() model.MetricKey { return model.KeyPublicFields }

func (PublicAttributes) Class(ctx *ClassContext) (float64, bool, error) {
	n := 0
	for _, f := range ctx.Class.Fields {
		if !f.Synthetic && f.Visibility.IsPublic() {
			n++
		}
	}
	return float64(n), true, nil
}

// Accessors (NOAC) counts conceptual getters and setters. Properties with
// implicit accessors are counted structurally: one for a public read-only
// property, two for a public mutable one. Written accessor methods count
// unless they belong to such a property.
type Accessors struct{}

func (Accessors) Key() model.MetricKey { return model.KeyAccessors }

func (Accessors) Class(ctx *ClassContext) (float64, bool, error) {
	n := 0
	implicit := make(map[string]bool)
	for _, f := range ctx.Class.Fields {
		if !f.ImplicitAccessors || f.Synthetic {
			continue
		}
		implicit[f.Name] = true
		if !f.Visibility.IsPublic() {
			continue
		}
		n++
		if f.Mutable {
			n++
		}
	}

	for i := range ctx.Class.Methods {
		m := &ctx.Class.Methods[i]
		if m.Synthetic || !m.IsAccessor() || !m.Visibility.IsPublic() || implicit[m.AccessorFor] {
			continue
		}
		n++
	}

	return float64(n), true, nil
}

// Attributes (NOA) counts non-synthetic fields
type Attributes struct{}

func (Attributes) Key() model.MetricKey { return model.KeyAttributes }

func (Attributes) Class(ctx *ClassContext) (float64, bool, error) {
	n := 0
	for _, f := range ctx.Class.Fields {
		if !f.Synthetic {
			n++
		}
	}
	return float64(n), true, nil
}

// MethodCount (NOM) counts the measured methods of the class
type MethodCount struct{}

func (MethodCount) Key() model.MetricKey { return model.KeyMethods }

func (MethodCount) Class(ctx *ClassContext) (float64, bool, error) {
	return float64(len(ctx.Traces)), true, nil
}

// Operations (NOO) counts the operations a class implements: methods and
// custom accessors with a body. Constructors and abstract declarations are
// not operations.
type Operations struct{}

func (Operations) Key() model.MetricKey { return model.KeyOperations }

func (Operations) Class(ctx *ClassContext) (float64, bool, error) {
	n := 0
	for _, tr := range ctx.Traces {
		if !tr.Method.Constructor && !tr.Method.Abstract {
			n++
		}
	}
	return float64(n), true, nil
}

// WeightedMethods (WMC) sums the cyclomatic complexity of measured methods
type WeightedMethods struct{}

func (WeightedMethods) Key() model.MetricKey { return model.KeyWeightedMethods }

func (WeightedMethods) Class(ctx *ClassContext) (float64, bool, error) {
	sum := 0
	for _, tr := range ctx.Traces {
		sum += cyclomatic(&MethodContext{Class: ctx.Class, Method: tr.Method, Trace: tr})
	}
	return float64(sum), true, nil
}
