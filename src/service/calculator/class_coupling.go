package calculator

import (
	"fmt"

	"quality-metrics/src/model"
	"quality-metrics/src/util"
)

// ForeignData (ATFD) counts distinct foreign types whose data the class
// reads or writes, through direct field access or recognized accessors.
// Types reached only through behavioral calls do not count.
type ForeignData struct{}

func (ForeignData) Key() model.MetricKey { return model.KeyForeignData }

func (ForeignData) Class(ctx *ClassContext) (float64, bool, error) {
	types := make(map[string]bool)
	add := func(name, typ string) {
		t := foreignType(name, typ)
		if t == "" || ctx.Types.IsLibrary(t) {
			return
		}
		if t = canonicalType(ctx, t); t != ctx.Class.Name {
			types[t] = true
		}
	}

	for _, tr := range ctx.Traces {
		for _, e := range tr.Events {
			switch ev := e.(type) {
			case model.AccessEvent:
				if ev.Receiver == model.ReceiverForeign {
					add(ev.ReceiverName, ev.ReceiverType)
				}
			case model.CallEvent:
				if ev.Target == model.TargetForeign && ev.DataAccess {
					add(ev.ReceiverName, ev.ReceiverType)
				}
			}
		}
	}

	return float64(len(types)), true, nil
}

// CouplingBetweenObjects (CBO) counts distinct project types the class
// references through its declarations and call receivers. Generic
// arguments are references of their own.
type CouplingBetweenObjects struct{}

func (CouplingBetweenObjects) Key() model.MetricKey { return model.KeyCoupling }

func (CouplingBetweenObjects) Class(ctx *ClassContext) (float64, bool, error) {
	c := ctx.Class
	types := make(map[string]bool)
	add := func(ref string) {
		for _, t := range util.SplitType(ref) {
			if ctx.Types.IsLibrary(t) {
				continue
			}
			t = canonicalType(ctx, t)
			if t != c.Name {
				types[t] = true
			}
		}
	}

	add(c.Superclass)
	for _, i := range c.Interfaces {
		add(i)
	}
	for _, f := range c.Fields {
		add(f.Type)
	}

	for _, tr := range ctx.Traces {
		m := tr.Method
		for _, p := range m.Parameters {
			add(p.Type)
		}
		add(m.ReturnType)
		model.Inspect(m.Body, func(n *model.Node) bool {
			switch n.Kind {
			case model.NodeLocal:
				add(n.Type)
			case model.NodeCall:
				add(n.ReceiverType)
			case model.NodeTry:
				for _, cc := range n.Catches {
					add(cc.Type)
				}
			}
			return true
		})
	}

	return float64(len(types)), true, nil
}

// DataAbstraction (DAC) counts distinct project types used as field types,
// generic arguments included. Library types and the class itself do not
// count.
type DataAbstraction struct{}

func (DataAbstraction) Key() model.MetricKey { return model.KeyDataAbstraction }

func (DataAbstraction) Class(ctx *ClassContext) (float64, bool, error) {
	types := make(map[string]bool)
	for _, f := range ctx.Class.Fields {
		if f.Synthetic {
			continue
		}
		for _, t := range util.SplitType(f.Type) {
			if ctx.Types.IsLibrary(t) {
				continue
			}
			if t = canonicalType(ctx, t); t != ctx.Class.Name {
				types[t] = true
			}
		}
	}
	return float64(len(types)), true, nil
}

// ResponseForClass (RFC) is the size of the response set: the declared
// methods and implicit property accessors, plus every distinct operation
// called from them. Operations are told apart by name and argument count;
// calls on other receivers are qualified by the receiver type.
type ResponseForClass struct{}

func (ResponseForClass) Key() model.MetricKey { return model.KeyResponse }

func (ResponseForClass) Class(ctx *ClassContext) (float64, bool, error) {
	response := make(map[string]bool)
	add := func(name string, arity int) {
		response[fmt.Sprintf("%s/%d", name, arity)] = true
	}

	for _, f := range ctx.Class.Fields {
		if !f.ImplicitAccessors || f.Synthetic {
			continue
		}
		add("<get-"+f.Name+">", 0)
		if f.Mutable {
			add("<set-"+f.Name+">", 1)
		}
	}

	for _, tr := range ctx.Traces {
		add(tr.Method.Name, len(tr.Method.Parameters))
		for _, e := range tr.Events {
			c, ok := e.(model.CallEvent)
			if !ok {
				continue
			}
			switch c.Target {
			case model.TargetSelf:
				add(c.Callee, c.ArgCount)
			case model.TargetConstructor:
				add(foreignType(c.ReceiverName, c.ReceiverType)+".<init>", c.ArgCount)
			default:
				add(foreignType(c.ReceiverName, c.ReceiverType)+"."+c.Callee, c.ArgCount)
			}
		}
	}

	return float64(len(response)), true, nil
}

// canonicalType maps a reference to the identity of the analyzed class it
// resolves to, so "Order" and "com.shop.Order" count once
func canonicalType(ctx *ClassContext, t string) string {
	if ctx.Index != nil {
		if resolved, ok := ctx.Index.Resolve(ctx.Class, t); ok {
			return resolved.Name
		}
	}
	return t
}
