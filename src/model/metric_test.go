package model

import (
	"reflect"
	"testing"
)

func TestResultSetScopeIsOrdered(t *testing.T) {
	rs := NewResultSet()
	rs.Put(MetricValue{Scope: ScopeClass, Entity: "p.B", Key: KeyAttributes, Value: 1})
	rs.Put(MetricValue{Scope: ScopeMethod, Entity: "p.A#run()", Key: KeyCyclomatic, Value: 2})
	rs.Put(MetricValue{Scope: ScopeClass, Entity: "p.A", Key: KeyTightCohesion, Value: 0.5})
	rs.Put(MetricValue{Scope: ScopeClass, Entity: "p.A", Key: KeyLackOfCohesion, Value: 2})
	rs.Put(MetricValue{Scope: ScopeProject, Entity: "shop", Key: KeyAttributes, Value: 1})
	rs.Put(MetricValue{Scope: ScopeClass, Entity: "p.B", Key: KeyAttributes, Value: 3})

	var got []string
	for _, v := range rs.Scope(ScopeClass) {
		got = append(got, v.Entity+" "+string(v.Key))
	}
	want := []string{"p.A LCOM", "p.A TCC", "p.B NOA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if v, _ := rs.Get(ScopeClass, "p.B", KeyAttributes); v.Value != 3 {
		t.Errorf("expected the last put to win, got %v", v.Value)
	}
	if len(rs.Scope(ScopePackage)) != 0 {
		t.Error("expected no package values")
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		entity string
		want   string
	}{
		{"p.A#run(Int)", "p.A"},
		{"p.A", "p.A"},
	}
	for _, tt := range tests {
		if got := ClassOf(tt.entity); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.entity, tt.want, got)
		}
	}
}

func TestEveryDefinitionIsUnique(t *testing.T) {
	seen := make(map[MetricKey]bool)
	for _, d := range Definitions {
		if seen[d.Key] {
			t.Errorf("duplicate definition for %s", d.Key)
		}
		seen[d.Key] = true
		if d.Scope != ScopeMethod && d.Scope != ScopeClass {
			t.Errorf("%s: unexpected scope %s", d.Key, d.Scope)
		}
	}
	for _, k := range []MetricKey{KeyLackOfCohesion, KeyTightCohesion, KeyResponse, KeyDataAbstraction, KeyOverridden, KeyOperations} {
		if _, ok := Definition(k); !ok {
			t.Errorf("expected a definition for %s", k)
		}
	}
}
