package calculator

import (
	"testing"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
	"quality-metrics/src/service/index"
	"quality-metrics/src/service/walker"
	"quality-metrics/src/util"
)

// Scenario D: x, this.y = ..., a.z, b.z, this.x
func scenarioD() []model.Node {
	return []model.Node{
		model.Stmt(model.Read("x")),
		model.Stmt(model.ThisWrite("y")),
		model.Stmt(model.ForeignRead("a", "p.A", "z")),
		model.Stmt(model.ForeignRead("b", "p.B", "z")),
		model.Stmt(model.ThisRead("x")),
	}
}

func TestLocalityAndProviders(t *testing.T) {
	if got := measure(t, Locality{}, nil, scenarioD()...); got != 0.6 {
		t.Errorf("expected LAA 0.6, got %v", got)
	}
	if got := measure(t, ForeignProviders{}, nil, scenarioD()...); got != 2 {
		t.Errorf("expected FDP 2, got %v", got)
	}
	if got := measure(t, AccessedVariables{}, nil, scenarioD()...); got != 4 {
		t.Errorf("expected NOAV 4, got %v", got)
	}
}

func TestLocalityUndefinedWithoutAttributeAccess(t *testing.T) {
	class := &model.ClassModel{Name: "p.Subject", Fields: []model.FieldModel{{Name: "x"}}}
	method := &model.MethodModel{
		Name:       "run",
		Parameters: []model.Parameter{{Name: "x"}},
		Body: []model.Node{
			model.Stmt(model.Read("x")),
			model.Stmt(model.LocalRead("tmp")),
		},
	}
	if v, ok := (Locality{}).Method(methodContext(class, method)); ok {
		t.Errorf("expected LAA to be absent, got %v", v)
	}
}

func TestLocalityStaysInRange(t *testing.T) {
	bodies := [][]model.Node{
		{model.Stmt(model.Read("x"))},
		{model.Stmt(model.ForeignRead("a", "p.A", "z"))},
		{model.Stmt(model.Read("inherited")), model.Stmt(model.Read("x"))},
		scenarioD(),
	}
	for i, body := range bodies {
		got := measure(t, Locality{}, nil, body...)
		if got < 0 || got > 1 {
			t.Errorf("body %d: LAA %v out of range", i, got)
		}
	}
	if got := measure(t, Locality{}, nil, bodies[2]...); got != 0.5 {
		t.Errorf("expected undeclared self access to count toward the total only, got %v", got)
	}
}

func TestAccessedVariablesIgnoresRepeats(t *testing.T) {
	once := measure(t, AccessedVariables{}, nil, model.Stmt(model.Read("x")), model.Stmt(model.ForeignRead("a", "p.A", "z")))
	twice := measure(t, AccessedVariables{}, nil,
		model.Stmt(model.Read("x")), model.Stmt(model.Read("x")),
		model.Stmt(model.ForeignRead("a", "p.A", "z")), model.Stmt(model.ForeignWrite("a", "p.A", "z")),
	)
	if once != twice || once != 2 {
		t.Errorf("expected NOAV 2 in both cases, got %v and %v", once, twice)
	}
}

func TestAccessedVariablesIdentity(t *testing.T) {
	tests := []struct {
		name string
		body []model.Node
		want float64
	}{
		{"implicit and explicit self are one variable", []model.Node{
			model.Stmt(model.Read("x")), model.Stmt(model.ThisRead("x")),
		}, 1},
		{"same member on two receivers", []model.Node{
			model.Stmt(model.ForeignRead("a", "p.A", "z")), model.Stmt(model.ForeignRead("b", "p.A", "z")),
		}, 2},
		{"local shadows the field", []model.Node{
			model.Local("x", "Int", nil), model.Stmt(model.Read("x")), model.Stmt(model.ThisRead("x")),
		}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := measure(t, AccessedVariables{}, nil, tt.body...); got != tt.want {
				t.Errorf("expected NOAV %v, got %v", tt.want, got)
			}
		})
	}
}

func TestForeignProvidersCountsDataCallsOnly(t *testing.T) {
	got := measure(t, ForeignProviders{}, nil,
		model.Stmt(model.AccessorCall("a", "p.A", "getZ")),
		model.Stmt(model.ForeignCall("b", "p.B", "work")),
	)
	if got != 1 {
		t.Errorf("expected FDP 1, got %v", got)
	}
}

// Scenario E: construct, call it, call self, call library
func TestMessagePassing(t *testing.T) {
	newOther := model.NewCall("p.Other")
	got := measure(t, MessagePassing{}, nil,
		model.Local("o", "p.Other", &newOther),
		model.Stmt(model.ForeignCall("o", "p.Other", "run")),
		model.Stmt(model.SelfCall("helper")),
		model.Stmt(model.LibraryCall("", "kotlin.math", "max", model.Lit(), model.Lit())),
	)
	if got != 2 {
		t.Errorf("expected MPC 2, got %v", got)
	}
}

func TestCouplingIntensityAndDispersion(t *testing.T) {
	body := []model.Node{
		model.Stmt(model.ForeignCall("a", "p.A", "f")),
		model.Stmt(model.ForeignCall("a", "p.A", "f")),
		model.Stmt(model.ForeignCall("a2", "p.A", "g")),
		model.Stmt(model.ForeignCall("b", "p.B", "h")),
		model.Stmt(model.LibraryCall("s", "kotlin.String", "trim")),
	}
	if got := measure(t, CouplingIntensity{}, nil, body...); got != 3 {
		t.Errorf("expected CINT 3, got %v", got)
	}
	if got := measure(t, CouplingDispersion{}, nil, body...); got != 2.0/3.0 {
		t.Errorf("expected CDISP 2/3, got %v", got)
	}

	class := &model.ClassModel{Name: "p.Subject"}
	method := &model.MethodModel{Name: "run", Body: []model.Node{model.Stmt(model.SelfCall("x"))}}
	if _, ok := (CouplingDispersion{}).Method(methodContext(class, method)); ok {
		t.Error("expected CDISP to be absent without foreign calls")
	}
}

func classContext(t *testing.T, project *model.Project, name string) *ClassContext {
	t.Helper()
	idx := index.Build(project)
	class, ok := idx.Class(name)
	if !ok {
		t.Fatalf("class %s not indexed", name)
	}
	ctx := &ClassContext{
		Class: class,
		Index: idx,
		Types: util.NewTypeTable(config.DefaultConfig().Languages["kotlin"]),
	}
	for _, m := range idx.Methods(name) {
		ctx.Traces = append(ctx.Traces, walker.Walk(class, m))
	}
	return ctx
}

// Scenario F: one type accessed for data four ways, another only called
func TestForeignData(t *testing.T) {
	project := &model.Project{Classes: []model.ClassModel{
		{Name: "p.A", Package: "p"},
		{Name: "p.B", Package: "p"},
		{
			Name:    "p.Client",
			Package: "p",
			Methods: []model.MethodModel{
				{Name: "read", Body: []model.Node{
					model.Stmt(model.ForeignRead("a", "p.A", "v")),
					model.Stmt(model.AccessorCall("a", "p.A", "getV")),
				}},
				{Name: "write", Body: []model.Node{
					model.Stmt(model.ForeignWrite("other", "A", "v")),
					model.Stmt(model.AccessorCall("a", "p.A", "setV", model.Lit())),
					model.Stmt(model.ForeignCall("b", "p.B", "doWork")),
				}},
				{Name: "self", Body: []model.Node{
					model.Stmt(model.ForeignRead("peer", "p.Client", "state")),
					model.Stmt(model.ForeignRead("s", "kotlin.String", "length")),
				}},
			},
		},
	}}

	got, ok, err := (ForeignData{}).Class(classContext(t, project, "p.Client"))
	if err != nil || !ok {
		t.Fatalf("unexpected result ok=%v err=%v", ok, err)
	}
	if got != 1 {
		t.Errorf("expected ATFD 1, got %v", got)
	}
}

func TestCouplingBetweenObjects(t *testing.T) {
	newMoney := model.NewCall("p.Money")
	project := &model.Project{Classes: []model.ClassModel{
		{
			Name:       "p.Order",
			Package:    "p",
			Superclass: "p.Entity",
			Interfaces: []string{"java.io.Serializable"},
			Fields: []model.FieldModel{
				{Name: "customer", Type: "p.Customer?"},
				{Name: "items", Type: "List<Item>"},
				{Name: "count", Type: "Int"},
				{Name: "parent", Type: "p.Order"},
			},
			Methods: []model.MethodModel{
				{
					Name:       "ship",
					Parameters: []model.Parameter{{Name: "to", Type: "p.Address"}},
					ReturnType: "Unit",
					Body: []model.Node{
						model.Local("total", "p.Money", &newMoney),
						model.Stmt(model.ForeignCall("tax", "p.Tax", "apply")),
						model.Stmt(model.LibraryCall("", "kotlin.math", "max")),
						model.Stmt(model.SelfCall("validate")),
					},
				},
			},
		},
		{Name: "p.Item", Package: "p"},
	}}

	got, _, err := (CouplingBetweenObjects{}).Class(classContext(t, project, "p.Order"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Entity, Customer, Item, Address, Money, Tax
	if got != 6 {
		t.Errorf("expected CBO 6, got %v", got)
	}
}

func TestDataAbstraction(t *testing.T) {
	project := &model.Project{Classes: []model.ClassModel{
		{
			Name:    "p.Order",
			Package: "p",
			Fields: []model.FieldModel{
				{Name: "customer", Type: "p.Customer?"},
				{Name: "items", Type: "List<Item>"},
				{Name: "lines", Type: "Map<String, p.Line>"},
				{Name: "backup", Type: "p.Customer"},
				{Name: "count", Type: "Int"},
				{Name: "parent", Type: "p.Order"},
				{Name: "cache$delegate", Type: "p.Cache", Synthetic: true},
			},
		},
		{Name: "p.Item", Package: "p"},
	}}

	// Customer, Item, Line
	if got := classMetric(t, DataAbstraction{}, classContext(t, project, "p.Order")); got != 3 {
		t.Errorf("expected DAC 3, got %v", got)
	}
}

func TestResponseForClass(t *testing.T) {
	project := &model.Project{Classes: []model.ClassModel{{
		Name:     "p.Cart",
		Package:  "p",
		Language: model.LanguageKotlin,
		Fields: []model.FieldModel{
			{Name: "total", Type: "p.Money", ImplicitAccessors: true, Mutable: true},
			{Name: "id", Type: "Long", ImplicitAccessors: true},
			{Name: "items", Type: "MutableList<p.Item>", Visibility: model.VisibilityPrivate},
		},
		Methods: []model.MethodModel{
			{Name: "add", Parameters: []model.Parameter{{Name: "item", Type: "p.Item"}}, Body: []model.Node{
				model.Stmt(model.SelfCall("recalc")),
				model.Stmt(model.ForeignCall("item", "p.Item", "price")),
				model.Stmt(model.ForeignCall("item", "p.Item", "price")),
				model.Stmt(model.LibraryCall("items", "MutableList<p.Item>", "add", model.LocalRead("item"))),
			}},
			{Name: "recalc", Body: []model.Node{
				model.Stmt(model.NewCall("p.Money")),
				model.Stmt(model.SelfCall("add", model.Lit())),
			}},
		},
	}}}

	// get/set total, get id, add/1, recalc/0, Item.price, MutableList.add, Money constructor
	if got := classMetric(t, ResponseForClass{}, classContext(t, project, "p.Cart")); got != 8 {
		t.Errorf("expected RFC 8, got %v", got)
	}
}
