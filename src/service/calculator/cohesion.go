package calculator

import (
	"quality-metrics/src/model"
	"quality-metrics/src/service/walker"
)

// ownFields returns the non-synthetic fields of the class a method reads or
// writes through an implicit or explicit self receiver. Shadowed names were
// already resolved to locals by the walker. A custom accessor touches the
// backing field of the property it belongs to.
func ownFields(c *model.ClassModel, tr *walker.Trace) map[string]bool {
	fields := make(map[string]bool)
	own := func(name string) {
		if f, ok := c.Field(name); ok && !f.Synthetic {
			fields[name] = true
		}
	}

	if tr.Method.IsAccessor() {
		own(tr.Method.AccessorFor)
	}
	for _, e := range tr.Events {
		if a, ok := e.(model.AccessEvent); ok && a.Receiver.IsSelf() {
			own(a.Name)
		}
	}
	return fields
}

// LackOfCohesion (LCOM) is the number of connected components among the
// methods of a class, two methods being connected when they use a common
// field. Methods that use no field are left out. Implicit accessors use
// their own property, so an otherwise untouched property is a component.
type LackOfCohesion struct{}

func (LackOfCohesion) Key() model.MetricKey { return model.KeyLackOfCohesion }

func (LackOfCohesion) Class(ctx *ClassContext) (float64, bool, error) {
	uf := newUnionFind()

	for _, f := range ctx.Class.Fields {
		if f.ImplicitAccessors && !f.Synthetic {
			uf.add(f.Name)
		}
	}
	for _, tr := range ctx.Traces {
		if tr.Method.Abstract {
			continue
		}
		var first string
		for name := range ownFields(ctx.Class, tr) {
			uf.add(name)
			if first == "" {
				first = name
				continue
			}
			uf.union(first, name)
		}
	}

	return float64(uf.components()), true, nil
}

// TightCohesion (TCC) is the share of method pairs that use at least one
// common field. Constructors and abstract methods are not counted.
// Undefined for fewer than two methods.
type TightCohesion struct{}

func (TightCohesion) Key() model.MetricKey { return model.KeyTightCohesion }

func (TightCohesion) Class(ctx *ClassContext) (float64, bool, error) {
	var used []map[string]bool
	for _, tr := range ctx.Traces {
		if tr.Method.Constructor || tr.Method.Abstract {
			continue
		}
		used = append(used, ownFields(ctx.Class, tr))
	}

	n := len(used)
	if n < 2 {
		return 0, false, nil
	}

	connected := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if shareField(used[i], used[j]) {
				connected++
			}
		}
	}
	return float64(connected) / float64(n*(n-1)/2), true, nil
}

func shareField(a, b map[string]bool) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for name := range a {
		if b[name] {
			return true
		}
	}
	return false
}

// unionFind groups field names into components
type unionFind struct {
	parent map[string]string
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[string]string)}
}

func (u *unionFind) add(x string) {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
	}
}

func (u *unionFind) find(x string) string {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b string) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

func (u *unionFind) components() int {
	n := 0
	for x, p := range u.parent {
		if x == p {
			n++
		}
	}
	return n
}
