package calculator

import (
	"quality-metrics/src/model"
)

// Locality (LAA) is own attribute accesses over all attribute accesses.
// Locals are not attributes. A self access to a name the class does not
// declare (inherited or synthetic) counts toward the total only. Undefined
// when the method touches no attribute.
type Locality struct{}

func (Locality) Key() model.MetricKey { return model.KeyLocality }

func (Locality) Method(ctx *MethodContext) (float64, bool) {
	total, own := 0, 0
	for _, e := range ctx.Trace.Events {
		a, ok := e.(model.AccessEvent)
		if !ok {
			continue
		}
		switch {
		case a.Receiver.IsSelf():
			total++
			if _, declared := ctx.Class.Field(a.Name); declared {
				own++
			}
		case a.Receiver == model.ReceiverForeign:
			total++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(own) / float64(total), true
}

// ForeignProviders (FDP) counts distinct foreign objects whose data the
// method uses, by variable identity rather than type
type ForeignProviders struct{}

func (ForeignProviders) Key() model.MetricKey { return model.KeyProviders }

func (ForeignProviders) Method(ctx *MethodContext) (float64, bool) {
	providers := make(map[string]bool)
	for _, e := range ctx.Trace.Events {
		switch ev := e.(type) {
		case model.AccessEvent:
			if ev.Receiver == model.ReceiverForeign {
				providers[foreignReceiver(ev.ReceiverName, ev.ReceiverType)] = true
			}
		case model.CallEvent:
			if ev.Target == model.TargetForeign && ev.DataAccess {
				providers[foreignReceiver(ev.ReceiverName, ev.ReceiverType)] = true
			}
		}
	}
	return float64(len(providers)), true
}

// AccessedVariables (NOAV) counts distinct variables read or written.
// Variables are not plain (receiver kind, name) pairs: qualified and
// unqualified self accesses name the same variable, so x and this.x count
// once, while foreign members are told apart by their receiver, so a.z and
// b.z count twice.
type AccessedVariables struct{}

func (AccessedVariables) Key() model.MetricKey { return model.KeyVariables }

func (AccessedVariables) Method(ctx *MethodContext) (float64, bool) {
	type variable struct {
		receiver model.ReceiverKind
		owner    string
		name     string
	}
	seen := make(map[variable]bool)
	for _, e := range ctx.Trace.Events {
		a, ok := e.(model.AccessEvent)
		if !ok {
			continue
		}
		v := variable{receiver: a.Receiver, name: a.Name}
		switch {
		case a.Receiver.IsSelf():
			v.receiver = model.ReceiverExplicitSelf
		case a.Receiver == model.ReceiverForeign:
			v.owner = foreignReceiver(a.ReceiverName, a.ReceiverType)
		}
		seen[v] = true
	}
	return float64(len(seen)), true
}

// MessagePassing (MPC) counts constructor and foreign method calls.
// Self and library calls are free.
type MessagePassing struct{}

func (MessagePassing) Key() model.MetricKey { return model.KeyCouplingCalls }

func (MessagePassing) Method(ctx *MethodContext) (float64, bool) {
	n := 0
	for _, e := range ctx.Trace.Events {
		if c, ok := e.(model.CallEvent); ok {
			if c.Target == model.TargetConstructor || c.Target == model.TargetForeign {
				n++
			}
		}
	}
	return float64(n), true
}

type operation struct {
	provider string
	callee   string
}

func foreignOperations(ctx *MethodContext) map[operation]bool {
	ops := make(map[operation]bool)
	for _, e := range ctx.Trace.Events {
		if c, ok := e.(model.CallEvent); ok {
			if c.Target == model.TargetConstructor || c.Target == model.TargetForeign {
				ops[operation{foreignType(c.ReceiverName, c.ReceiverType), c.Callee}] = true
			}
		}
	}
	return ops
}

// CouplingIntensity (CINT) counts distinct foreign operations called
type CouplingIntensity struct{}

func (CouplingIntensity) Key() model.MetricKey { return model.KeyIntensity }

func (CouplingIntensity) Method(ctx *MethodContext) (float64, bool) {
	return float64(len(foreignOperations(ctx))), true
}

// CouplingDispersion (CDISP) is the number of classes providing the called
// foreign operations over the number of those operations. Undefined when
// the method calls no foreign operation.
type CouplingDispersion struct{}

func (CouplingDispersion) Key() model.MetricKey { return model.KeyDispersion }

func (CouplingDispersion) Method(ctx *MethodContext) (float64, bool) {
	ops := foreignOperations(ctx)
	if len(ops) == 0 {
		return 0, false
	}
	providers := make(map[string]bool)
	for op := range ops {
		providers[op.provider] = true
	}
	return float64(len(providers)) / float64(len(ops)), true
}
