package calculator

import (
	"testing"

	"quality-metrics/src/model"
	"quality-metrics/src/service/walker"
)

func methodContext(class *model.ClassModel, method *model.MethodModel) *MethodContext {
	return &MethodContext{Class: class, Method: method, Trace: walker.Walk(class, method)}
}

func measure(t *testing.T, c MethodCalculator, params []model.Parameter, body ...model.Node) float64 {
	t.Helper()
	class := &model.ClassModel{Name: "p.Subject", Fields: []model.FieldModel{{Name: "x"}, {Name: "y"}}}
	method := &model.MethodModel{Name: "run", Parameters: params, Body: body}
	v, ok := c.Method(methodContext(class, method))
	if !ok {
		t.Fatalf("%s: expected a defined value", c.Key())
	}
	return v
}

func gt(name string) model.Node {
	return model.Binary(model.OpOther, model.Read(name), model.Lit())
}

// Scenario A: if (x>0) { if (y>0) return 1 }
func scenarioA() []model.Node {
	return []model.Node{
		model.If(gt("x"), []model.Node{
			model.If(gt("y"), []model.Node{model.Jump(model.JumpReturn, "")}),
		}),
	}
}

func TestCyclomatic(t *testing.T) {
	tests := []struct {
		name string
		body []model.Node
		want float64
	}{
		{"empty body", nil, 1},
		{"scenario A nested ifs", scenarioA(), 3},
		{"else-if chain", []model.Node{model.If(gt("x"), nil, model.If(gt("y"), nil, model.Block()))}, 3},
		{"when counts arms beyond the first", []model.Node{
			model.When(ptr(model.Read("x")), model.Arm(nil), model.Arm(nil), model.ElseArm()),
		}, 3},
		{"boolean operators", []model.Node{model.If(model.And(gt("x"), model.Or(gt("y"), gt("x"))), nil)}, 4},
		{"catch and loop", []model.Node{
			model.Loop(model.LoopForEach, nil, model.Try(nil, []model.CatchClause{model.Catch("E")})),
		}, 3},
		{"elvis", []model.Node{model.Stmt(model.Elvis(model.Read("x"), model.Lit()))}, 2},
		{"safe navigation is free", []model.Node{model.Stmt(model.SafeRead("o", "p.O", "v"))}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := measure(t, Cyclomatic{}, nil, tt.body...); got != tt.want {
				t.Errorf("expected CC %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCognitive(t *testing.T) {
	a, b, c := model.LocalRead("a"), model.LocalRead("b"), model.LocalRead("c")
	n := []model.Parameter{{Name: "n", Type: "Int"}}

	tests := []struct {
		name   string
		params []model.Parameter
		body   []model.Node
		want   float64
	}{
		{"nested ifs pay nesting", nil, scenarioA(), 3},
		{"same operator chain costs one", nil, []model.Node{model.If(model.And(model.And(a, b), c), nil)}, 2},
		{"mixed operator chain costs per switch", nil, []model.Node{model.If(model.Or(model.And(a, b), c), nil)}, 3},
		{"when arms at top level", nil, []model.Node{
			model.When(nil, model.Arm(nil), model.Arm(nil), model.ElseArm()),
		}, 3},
		{"when arms inside a loop", nil, []model.Node{
			model.Loop(model.LoopWhile, nil, model.When(nil, model.Arm(nil), model.ElseArm())),
		}, 5},
		{"elvis at current depth", nil, []model.Node{
			model.If(gt("x"), []model.Node{model.Stmt(model.Elvis(model.Read("y"), model.Lit()))}),
		}, 3},
		{"direct recursion is flat", n, []model.Node{
			model.If(gt("x"), []model.Node{model.Stmt(model.SelfCall("run", model.LocalRead("n")))}),
		}, 2},
		{"overload with other arity is not recursion", n, []model.Node{
			model.Stmt(model.SelfCall("run")),
		}, 0},
		{"labeled jump", nil, []model.Node{
			model.Loop(model.LoopFor, nil, model.Jump(model.JumpBreak, "outer")),
		}, 2},
		{"safe navigation is free", nil, []model.Node{model.Stmt(model.SafeRead("o", "p.O", "v"))}, 0},
		{"lambda body nests", nil, []model.Node{
			model.If(gt("x"), []model.Node{
				model.Stmt(model.LibraryCall("l", "List<Int>", "forEach", model.Lambda(model.If(gt("y"), nil)))),
			}),
		}, 4},
		{"catch body nests", nil, []model.Node{
			model.Try(nil, []model.CatchClause{model.Catch("E", model.If(gt("x"), nil))}),
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := measure(t, Cognitive{}, tt.params, tt.body...); got != tt.want {
				t.Errorf("expected cognitive complexity %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNestingDepths(t *testing.T) {
	scenarioB := []model.Node{
		model.If(gt("x"), []model.Node{
			model.When(ptr(model.Read("y")), model.Arm(nil), model.Arm(nil), model.ElseArm()),
		}),
	}
	scenarioC := []model.Node{
		model.Loop(model.LoopFor, nil,
			model.Loop(model.LoopWhile, nil,
				model.Loop(model.LoopDoWhile, nil))),
	}

	tests := []struct {
		name                 string
		body                 []model.Node
		cnd, lnd, mnd, loops float64
	}{
		{"scenario A", scenarioA(), 2, 0, 2, 0},
		{"scenario B", scenarioB, 2, 0, 2, 0},
		{"scenario C", scenarioC, 0, 3, 3, 3},
		{"mixed", []model.Node{
			model.Loop(model.LoopFor, nil, model.If(gt("x"), []model.Node{model.Loop(model.LoopWhile, nil)})),
		}, 1, 2, 3, 2},
		{"lambda counts toward MND only", []model.Node{
			model.If(gt("x"), []model.Node{
				model.Stmt(model.LibraryCall("l", "List<Int>", "forEach", model.Lambda(model.If(gt("y"), nil)))),
			}),
		}, 2, 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := measure(t, ConditionNesting{}, nil, tt.body...); got != tt.cnd {
				t.Errorf("expected CND %v, got %v", tt.cnd, got)
			}
			if got := measure(t, LoopNesting{}, nil, tt.body...); got != tt.lnd {
				t.Errorf("expected LND %v, got %v", tt.lnd, got)
			}
			if got := measure(t, MaxNesting{}, nil, tt.body...); got != tt.mnd {
				t.Errorf("expected MND %v, got %v", tt.mnd, got)
			}
			if got := measure(t, LoopCount{}, nil, tt.body...); got != tt.loops {
				t.Errorf("expected NOL %v, got %v", tt.loops, got)
			}
		})
	}
}

func ptr(n model.Node) *model.Node { return &n }
