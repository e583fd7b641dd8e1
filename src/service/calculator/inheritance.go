package calculator

import (
	"quality-metrics/src/model"
)

// InheritanceDepth (DIT) is the length of the superclass chain. The implicit
// root counts zero; a superclass outside the analyzed set counts one and
// ends the chain. A cycle is an error for the class.
type InheritanceDepth struct{}

func (InheritanceDepth) Key() model.MetricKey { return model.KeyInheritance }

func (InheritanceDepth) Class(ctx *ClassContext) (float64, bool, error) {
	chain, external, err := ctx.Index.Ancestors(ctx.Class, ctx.Types)
	if err != nil {
		return 0, false, err
	}
	depth := len(chain)
	if external != "" {
		depth++
	}
	return float64(depth), true, nil
}

// Children (NOC) counts analyzed classes whose declared superclass is this class
type Children struct{}

func (Children) Key() model.MetricKey { return model.KeyChildren }

func (Children) Class(ctx *ClassContext) (float64, bool, error) {
	return float64(len(ctx.Index.Children(ctx.Class.Name))), true, nil
}

// OverriddenMethods (NOOM) counts methods that override an inherited one.
// A method flagged as an override by the front-end counts; otherwise it
// counts when an analyzed ancestor declares the same signature. Abstract
// declarations never count.
type OverriddenMethods struct{}

func (OverriddenMethods) Key() model.MetricKey { return model.KeyOverridden }

func (OverriddenMethods) Class(ctx *ClassContext) (float64, bool, error) {
	chain, _, err := ctx.Index.Ancestors(ctx.Class, ctx.Types)
	if err != nil {
		return 0, false, err
	}
	inherited := make(map[string]bool)
	for _, a := range chain {
		for _, m := range ctx.Index.Methods(a.Name) {
			if !m.Constructor && !m.Synthetic {
				inherited[m.Signature()] = true
			}
		}
	}

	n := 0
	for _, tr := range ctx.Traces {
		m := tr.Method
		if m.Abstract || m.Constructor {
			continue
		}
		if m.Override || inherited[m.Signature()] {
			n++
		}
	}
	return float64(n), true, nil
}
