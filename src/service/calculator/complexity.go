package calculator

import (
	"quality-metrics/src/model"
)

// Cyclomatic is McCabe's cyclomatic complexity: one plus the number of
// decision points. Every when arm after the first is a decision point.
type Cyclomatic struct{}

func (Cyclomatic) Key() model.MetricKey { return model.KeyCyclomatic }

func (Cyclomatic) Method(ctx *MethodContext) (float64, bool) {
	return float64(cyclomatic(ctx)), true
}

func cyclomatic(ctx *MethodContext) int {
	cc := 1
	for _, c := range controlEvents(ctx.Trace) {
		switch c.Kind {
		case model.ControlIf, model.ControlElseIf, model.ControlLoop, model.ControlCatch,
			model.ControlAnd, model.ControlOr, model.ControlElvis:
			cc++
		case model.ControlWhenBranch:
			if c.Branch > 0 {
				cc++
			}
		}
	}
	return cc
}

// Cognitive weighs structural decision points by the nesting they occur at.
//
// Boolean operators cost one per switch of operator inside a chain, so
// a && b && c costs 1 and a && b || c costs 2. Direct recursion and labeled
// jumps cost a flat 1.
type Cognitive struct{}

func (Cognitive) Key() model.MetricKey { return model.KeyCognitive }

func (Cognitive) Method(ctx *MethodContext) (float64, bool) {
	total := 0
	lastOp := make(map[int]model.ControlKind)
	arity := len(ctx.Method.Parameters)
	recursive := ctx.Method.IsRecursiveCandidate()

	for _, e := range ctx.Trace.Events {
		switch ev := e.(type) {
		case model.ControlEvent:
			switch ev.Kind {
			case model.ControlIf, model.ControlElseIf, model.ControlLoop, model.ControlCatch,
				model.ControlWhenBranch, model.ControlElvis:
				total += 1 + ev.Nesting
			case model.ControlAnd, model.ControlOr:
				if prev, ok := lastOp[ev.Chain]; !ok || prev != ev.Kind {
					total++
				}
				lastOp[ev.Chain] = ev.Kind
			case model.ControlLabeledJump:
				total++
			}
		case model.CallEvent:
			if recursive && ev.Target == model.TargetSelf && ev.Callee == ctx.Method.Name && ev.ArgCount == arity {
				total++
			}
		}
	}

	return float64(total), true
}
