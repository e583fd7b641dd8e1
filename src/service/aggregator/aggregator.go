package aggregator

import (
	"sort"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
)

// Aggregator reduces method values to class scope and class values to
// package and project scope
type Aggregator struct {
	reductions map[model.MetricKey]string
}

// NewAggregator creates an aggregator from the configured reductions
func NewAggregator(cfg config.MetricsConfig) *Aggregator {
	a := &Aggregator{reductions: make(map[model.MetricKey]string, len(cfg.Reductions))}
	for k, r := range cfg.Reductions {
		a.reductions[model.MetricKey(k)] = r
	}
	return a
}

// Strategy returns the reduction used for a key, sum when none is configured
func (a *Aggregator) Strategy(key model.MetricKey) string {
	if r, ok := a.reductions[key]; ok {
		return r
	}
	return config.ReduceSum
}

// Reduce folds values with a strategy. It reports false for an empty input
// so that an all-absent metric stays absent.
func Reduce(values []float64, strategy string) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	switch strategy {
	case config.ReduceMax:
		m := values[0]
		for _, v := range values[1:] {
			m = max(m, v)
		}
		return m, true
	case config.ReduceMean:
		return sum(values) / float64(len(values)), true
	default:
		return sum(values), true
	}
}

func sum(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}

// ReduceMethods turns the method values of one class into class values
func (a *Aggregator) ReduceMethods(class string, methodValues []model.MetricValue) []model.MetricValue {
	byKey := make(map[model.MetricKey][]float64)
	for _, v := range methodValues {
		byKey[v.Key] = append(byKey[v.Key], v.Value)
	}
	return a.reduce(model.ScopeClass, func(model.MetricKey) string { return class }, byKey, nil)
}

// ReduceClasses turns class values into package values, grouped by
// packageOf, and into project values
func (a *Aggregator) ReduceClasses(project string, classValues []model.MetricValue, packageOf func(class string) string) []model.MetricValue {
	type group struct {
		pkg string
		key model.MetricKey
	}
	byPackage := make(map[group][]float64)
	byKey := make(map[model.MetricKey][]float64)
	for _, v := range classValues {
		g := group{packageOf(v.Entity), v.Key}
		byPackage[g] = append(byPackage[g], v.Value)
		byKey[v.Key] = append(byKey[v.Key], v.Value)
	}

	var out []model.MetricValue
	groups := make([]group, 0, len(byPackage))
	for g := range byPackage {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].pkg != groups[j].pkg {
			return groups[i].pkg < groups[j].pkg
		}
		return groups[i].key < groups[j].key
	})
	for _, g := range groups {
		if v, ok := Reduce(byPackage[g], a.Strategy(g.key)); ok {
			out = append(out, model.MetricValue{Scope: model.ScopePackage, Entity: g.pkg, Key: g.key, Value: v})
		}
	}

	return a.reduce(model.ScopeProject, func(model.MetricKey) string { return project }, byKey, out)
}

func (a *Aggregator) reduce(scope model.Scope, entity func(model.MetricKey) string, byKey map[model.MetricKey][]float64, out []model.MetricValue) []model.MetricValue {
	keys := make([]model.MetricKey, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		if v, ok := Reduce(byKey[k], a.Strategy(k)); ok {
			out = append(out, model.MetricValue{Scope: scope, Entity: entity(k), Key: k, Value: v})
		}
	}
	return out
}
