package calculator

import "quality-metrics/src/model"

// ConditionNesting (CND) is the deepest conditional nesting, ignoring loops
type ConditionNesting struct{}

func (ConditionNesting) Key() model.MetricKey { return model.KeyConditionDepth }

func (ConditionNesting) Method(ctx *MethodContext) (float64, bool) {
	depth := 0
	for _, c := range controlEvents(ctx.Trace) {
		switch c.Kind {
		case model.ControlIf, model.ControlElseIf, model.ControlWhenBranch:
			depth = max(depth, c.ConditionDepth)
		}
	}
	return float64(depth), true
}

// LoopNesting (LND) is the deepest loop nesting, ignoring conditionals
type LoopNesting struct{}

func (LoopNesting) Key() model.MetricKey { return model.KeyLoopDepth }

func (LoopNesting) Method(ctx *MethodContext) (float64, bool) {
	depth := 0
	for _, c := range controlEvents(ctx.Trace) {
		if c.Kind == model.ControlLoop {
			depth = max(depth, c.LoopDepth)
		}
	}
	return float64(depth), true
}

// MaxNesting (MND) is the deepest nesting of conditionals and loops combined
type MaxNesting struct{}

func (MaxNesting) Key() model.MetricKey { return model.KeyNestingDepth }

func (MaxNesting) Method(ctx *MethodContext) (float64, bool) {
	depth := 0
	for _, c := range controlEvents(ctx.Trace) {
		switch c.Kind {
		case model.ControlIf, model.ControlElseIf, model.ControlWhenBranch, model.ControlLoop:
			depth = max(depth, c.Nesting+1)
		}
	}
	return float64(depth), true
}

// LoopCount (NOL) counts loop statements
type LoopCount struct{}

func (LoopCount) Key() model.MetricKey { return model.KeyLoops }

func (LoopCount) Method(ctx *MethodContext) (float64, bool) {
	n := 0
	for _, c := range controlEvents(ctx.Trace) {
		if c.Kind == model.ControlLoop {
			n++
		}
	}
	return float64(n), true
}
