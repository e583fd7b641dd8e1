package aggregator

import (
	"reflect"
	"testing"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
)

func TestClassify(t *testing.T) {
	higher := config.ThresholdConfig{Low: 10, High: 20}
	lower := config.ThresholdConfig{Low: 0.33, High: 0.5, LowerIsWorse: true}

	tests := []struct {
		name  string
		value float64
		t     config.ThresholdConfig
		want  model.Classification
	}{
		{"below low", 9, higher, model.ClassificationNormal},
		{"at low", 10, higher, model.ClassificationWarning},
		{"between", 15, higher, model.ClassificationWarning},
		{"at high", 20, higher, model.ClassificationError},
		{"lower is worse, high value", 0.9, lower, model.ClassificationNormal},
		{"lower is worse, at high", 0.5, lower, model.ClassificationNormal},
		{"lower is worse, between", 0.4, lower, model.ClassificationWarning},
		{"lower is worse, below low", 0.1, lower, model.ClassificationError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.value, tt.t); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClassifierApply(t *testing.T) {
	c := NewClassifier(map[string]config.ThresholdConfig{
		"CC":   {Low: 10, High: 20, Scopes: []string{"method"}},
		"NOPA": {Low: 3, High: 5},
	})

	rs := model.NewResultSet()
	rs.Put(model.MetricValue{Scope: model.ScopeMethod, Entity: "p.C#m()", Key: model.KeyCyclomatic, Value: 25})
	rs.Put(model.MetricValue{Scope: model.ScopeClass, Entity: "p.C", Key: model.KeyCyclomatic, Value: 25})
	rs.Put(model.MetricValue{Scope: model.ScopeClass, Entity: "p.C", Key: model.KeyPublicFields, Value: 1})
	rs.Put(model.MetricValue{Scope: model.ScopeClass, Entity: "p.C", Key: model.KeyChildren, Value: 4})
	rs.Put(model.MetricValue{Scope: model.ScopeMethod, Entity: "p.C#m()", Key: model.KeyIntensity, Value: 2})

	missing := c.Apply(rs)
	if want := []model.MetricKey{model.KeyIntensity, model.KeyChildren}; !reflect.DeepEqual(missing, want) {
		t.Errorf("expected missing %v, got %v", want, missing)
	}

	tests := []struct {
		scope  model.Scope
		entity string
		key    model.MetricKey
		want   model.Classification
	}{
		{model.ScopeMethod, "p.C#m()", model.KeyCyclomatic, model.ClassificationError},
		{model.ScopeClass, "p.C", model.KeyCyclomatic, model.Unclassified},
		{model.ScopeClass, "p.C", model.KeyPublicFields, model.ClassificationNormal},
		{model.ScopeClass, "p.C", model.KeyChildren, model.Unclassified},
	}
	for _, tt := range tests {
		v, ok := rs.Get(tt.scope, tt.entity, tt.key)
		if !ok {
			t.Fatalf("value %s %s missing", tt.entity, tt.key)
		}
		if v.Classification != tt.want {
			t.Errorf("%s %s: expected %q, got %q", tt.entity, tt.key, tt.want, v.Classification)
		}
	}
	if rs.Len() != 5 {
		t.Errorf("classification must not drop values, got %d", rs.Len())
	}
}
